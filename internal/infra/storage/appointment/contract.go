package appointment

import "github.com/consultly/booking-service/pkg/txmanager"

// Переиспользуем интерфейс executor из txmanager для работы с БД
type DBExecutor = txmanager.DBExecutor
