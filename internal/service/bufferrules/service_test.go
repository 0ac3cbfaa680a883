package bufferrules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consultly/booking-service/internal/domain"
	ruleRepo "github.com/consultly/booking-service/internal/infra/storage/bufferrule"
	planRepo "github.com/consultly/booking-service/internal/infra/storage/plan"
	shiftRepo "github.com/consultly/booking-service/internal/infra/storage/shift"
	"github.com/consultly/booking-service/internal/service/bufferrules/models"
)

type fixture struct {
	rules  map[int64]*domain.BufferRule
	plans  map[int64]*domain.Plan
	shifts map[int64]*domain.Shift
	nextID int64
}

func newFixture() *fixture {
	return &fixture{
		rules:  make(map[int64]*domain.BufferRule),
		plans:  make(map[int64]*domain.Plan),
		shifts: make(map[int64]*domain.Shift),
		nextID: 1,
	}
}

func (f *fixture) ListByOwner(_ context.Context, ownerID int64) ([]*domain.BufferRule, error) {
	result := make([]*domain.BufferRule, 0)
	for _, r := range f.rules {
		if plan, ok := f.plans[r.PlanID]; ok && plan.OwnerID == ownerID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fixture) Upsert(_ context.Context, rule *domain.BufferRule) (*domain.BufferRule, error) {
	for _, r := range f.rules {
		if r.PlanID == rule.PlanID && r.ShiftID == rule.ShiftID {
			r.BufferMinutes = rule.BufferMinutes
			return r, nil
		}
	}
	rule.ID = f.nextID
	f.nextID++
	f.rules[rule.ID] = rule
	return rule, nil
}

func (f *fixture) Delete(_ context.Context, id int64) error {
	if _, ok := f.rules[id]; !ok {
		return ruleRepo.ErrRuleNotFound
	}
	delete(f.rules, id)
	return nil
}

func (f *fixture) GetByID(_ context.Context, id int64) (*domain.Plan, error) {
	p, ok := f.plans[id]
	if !ok {
		return nil, planRepo.ErrPlanNotFound
	}
	return p, nil
}

// shiftGetter отдельный тип: у fixture уже есть GetByID для планов
type shiftGetter struct{ f *fixture }

func (g shiftGetter) GetByID(_ context.Context, id int64) (*domain.Shift, error) {
	s, ok := g.f.shifts[id]
	if !ok {
		return nil, shiftRepo.ErrShiftNotFound
	}
	return s, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(f *fixture) *Service {
	return NewService(f, f, shiftGetter{f}, nopLogger{})
}

func seed(f *fixture) {
	f.plans[10] = &domain.Plan{ID: 10, OwnerID: 1, Name: "Consultation", DurationMinutes: 30}
	f.shifts[20] = &domain.Shift{ID: 20, OwnerID: 1, Name: "Morning"}
}

func TestService_Upsert_CreatesRule(t *testing.T) {
	f := newFixture()
	seed(f)
	svc := newTestService(f)

	rule, err := svc.Upsert(context.Background(), &models.UpsertBufferRuleRequest{
		AdminID:       1,
		PlanID:        10,
		ShiftID:       20,
		BufferMinutes: 15,
	})
	require.NoError(t, err)
	assert.Equal(t, 15, rule.BufferMinutes)
	assert.Equal(t, int64(10), rule.PlanID)
}

func TestService_Upsert_UpdatesExistingPair(t *testing.T) {
	f := newFixture()
	seed(f)
	svc := newTestService(f)

	first, err := svc.Upsert(context.Background(), &models.UpsertBufferRuleRequest{
		AdminID: 1, PlanID: 10, ShiftID: 20, BufferMinutes: 10,
	})
	require.NoError(t, err)

	second, err := svc.Upsert(context.Background(), &models.UpsertBufferRuleRequest{
		AdminID: 1, PlanID: 10, ShiftID: 20, BufferMinutes: 25,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 25, second.BufferMinutes)
	assert.Len(t, f.rules, 1)
}

func TestService_Upsert_ClampsNegativeBuffer(t *testing.T) {
	f := newFixture()
	seed(f)
	svc := newTestService(f)

	rule, err := svc.Upsert(context.Background(), &models.UpsertBufferRuleRequest{
		AdminID: 1, PlanID: 10, ShiftID: 20, BufferMinutes: -5,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, rule.BufferMinutes)
}

func TestService_Upsert_RejectsExcessiveBuffer(t *testing.T) {
	f := newFixture()
	seed(f)
	svc := newTestService(f)

	_, err := svc.Upsert(context.Background(), &models.UpsertBufferRuleRequest{
		AdminID: 1, PlanID: 10, ShiftID: 20, BufferMinutes: domain.MaxBufferMinutes + 1,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Upsert_PlanNotFound(t *testing.T) {
	f := newFixture()
	seed(f)
	svc := newTestService(f)

	_, err := svc.Upsert(context.Background(), &models.UpsertBufferRuleRequest{
		AdminID: 1, PlanID: 99, ShiftID: 20, BufferMinutes: 10,
	})
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestService_Upsert_ShiftNotFound(t *testing.T) {
	f := newFixture()
	seed(f)
	svc := newTestService(f)

	_, err := svc.Upsert(context.Background(), &models.UpsertBufferRuleRequest{
		AdminID: 1, PlanID: 10, ShiftID: 99, BufferMinutes: 10,
	})
	assert.ErrorIs(t, err, ErrShiftNotFound)
}

func TestService_Upsert_AccessDeniedForForeignShift(t *testing.T) {
	f := newFixture()
	seed(f)
	f.shifts[21] = &domain.Shift{ID: 21, OwnerID: 2, Name: "Foreign"}
	svc := newTestService(f)

	_, err := svc.Upsert(context.Background(), &models.UpsertBufferRuleRequest{
		AdminID: 1, PlanID: 10, ShiftID: 21, BufferMinutes: 10,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_Delete_Success(t *testing.T) {
	f := newFixture()
	seed(f)
	f.rules[1] = &domain.BufferRule{ID: 1, PlanID: 10, ShiftID: 20, BufferMinutes: 10}
	svc := newTestService(f)

	err := svc.Delete(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Empty(t, f.rules)
}

func TestService_Delete_ForeignRuleNotVisible(t *testing.T) {
	f := newFixture()
	seed(f)
	f.plans[11] = &domain.Plan{ID: 11, OwnerID: 2, Name: "Foreign"}
	f.rules[1] = &domain.BufferRule{ID: 1, PlanID: 11, ShiftID: 20, BufferMinutes: 10}
	svc := newTestService(f)

	err := svc.Delete(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrRuleNotFound)
	assert.Len(t, f.rules, 1)
}

func TestService_List_OnlyOwnRules(t *testing.T) {
	f := newFixture()
	seed(f)
	f.plans[11] = &domain.Plan{ID: 11, OwnerID: 2, Name: "Foreign"}
	f.rules[1] = &domain.BufferRule{ID: 1, PlanID: 10, ShiftID: 20, BufferMinutes: 10}
	f.rules[2] = &domain.BufferRule{ID: 2, PlanID: 11, ShiftID: 20, BufferMinutes: 20}
	svc := newTestService(f)

	result, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, result.Rules, 1)
	assert.Equal(t, int64(10), result.Rules[0].PlanID)
}
