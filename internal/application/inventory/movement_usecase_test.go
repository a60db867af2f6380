package inventory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/application/inventory"
	"github.com/jhoicas/Repuestos-api/internal/application/usecase"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
	"github.com/jhoicas/Repuestos-api/internal/infrastructure/memory"
	"github.com/jhoicas/Repuestos-api/pkg/logger"
)

type fixture struct {
	store *memory.Store
	parts *usecase.SparePartUseCase
	moves *inventory.MovementUseCase
}

func newFixture() *fixture {
	store := memory.NewStore()
	partRepo := memory.NewSparePartRepo(store)
	return &fixture{
		store: store,
		parts: usecase.NewSparePartUseCase(partRepo),
		moves: inventory.NewMovementUseCase(partRepo, memory.NewStockInRepo(store), memory.NewStockOutRepo(store), logger.Nop()),
	}
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func day(s string) *dto.Date {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &dto.Date{Time: t}
}

func intPtr(n int) *int { return &n }

// createBolt crea el repuesto SP1 "Bolt" con 10 unidades a 2.
func (f *fixture) createBolt(t *testing.T) *dto.SparePartResponse {
	t.Helper()
	part, err := f.parts.Create(context.Background(), dto.CreateSparePartRequest{
		BusinessID: "SP1", Name: "Bolt", UnitPrice: dec("2"), Quantity: intPtr(10),
	})
	require.NoError(t, err)
	return part
}

func TestPostStockIn(t *testing.T) {
	ctx := context.Background()

	t.Run("incrementa la existencia", func(t *testing.T) {
		f := newFixture()
		part := f.createBolt(t)

		in, err := f.moves.PostStockIn(ctx, dto.CreateStockInRequest{
			BusinessID: "IN1", SparePartID: part.ID, Quantity: 5, ReceivedBy: "Ana",
		})
		require.NoError(t, err)
		require.NotNil(t, in.SparePart)
		assert.Equal(t, 15, in.SparePart.Quantity)

		got, err := f.parts.GetByID(ctx, part.ID)
		require.NoError(t, err)
		assert.Equal(t, 15, got.Quantity)
		assert.True(t, decimal.RequireFromString("30").Equal(got.TotalValue))
	})

	t.Run("fecha por defecto es la de registro", func(t *testing.T) {
		f := newFixture()
		part := f.createBolt(t)
		before := time.Now()
		in, err := f.moves.PostStockIn(ctx, dto.CreateStockInRequest{
			BusinessID: "IN1", SparePartID: part.ID, Quantity: 1, ReceivedBy: "Ana",
		})
		require.NoError(t, err)
		assert.False(t, in.Date.Before(before))
		assert.False(t, in.Date.After(time.Now()))
	})

	t.Run("repuesto inexistente no persiste nada", func(t *testing.T) {
		f := newFixture()
		_, err := f.moves.PostStockIn(ctx, dto.CreateStockInRequest{
			BusinessID: "IN1", SparePartID: "nope", Quantity: 5, ReceivedBy: "Ana",
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		list, err := f.moves.ListStockIn(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("cantidad cero o negativa", func(t *testing.T) {
		f := newFixture()
		part := f.createBolt(t)
		for _, q := range []int{0, -3} {
			_, err := f.moves.PostStockIn(ctx, dto.CreateStockInRequest{
				BusinessID: "IN1", SparePartID: part.ID, Quantity: q, ReceivedBy: "Ana",
			})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		}
	})

	t.Run("código duplicado", func(t *testing.T) {
		f := newFixture()
		part := f.createBolt(t)
		req := dto.CreateStockInRequest{BusinessID: "IN1", SparePartID: part.ID, Quantity: 1, ReceivedBy: "Ana"}
		_, err := f.moves.PostStockIn(ctx, req)
		require.NoError(t, err)
		_, err = f.moves.PostStockIn(ctx, req)
		assert.ErrorIs(t, err, domain.ErrDuplicate)

		got, _ := f.parts.GetByID(ctx, part.ID)
		assert.Equal(t, 11, got.Quantity)
	})
}

func TestPostStockOut(t *testing.T) {
	ctx := context.Background()

	t.Run("descuenta y calcula total", func(t *testing.T) {
		f := newFixture()
		part := f.createBolt(t)
		out, err := f.moves.PostStockOut(ctx, dto.CreateStockOutRequest{
			BusinessID: "OUT1", SparePartID: part.ID, Quantity: 4, UnitPrice: dec("2.5"), ApprovedBy: "Luis",
		})
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("10").Equal(out.TotalValue))
		assert.Equal(t, 6, out.SparePart.Quantity)

		got, _ := f.parts.GetByID(ctx, part.ID)
		assert.Equal(t, 6, got.Quantity)
		assert.True(t, decimal.RequireFromString("12").Equal(got.TotalValue))
	})

	t.Run("existencia exacta llega a cero", func(t *testing.T) {
		f := newFixture()
		part := f.createBolt(t)
		_, err := f.moves.PostStockOut(ctx, dto.CreateStockOutRequest{
			BusinessID: "OUT1", SparePartID: part.ID, Quantity: 10, UnitPrice: dec("2"), ApprovedBy: "Luis",
		})
		require.NoError(t, err)
		got, _ := f.parts.GetByID(ctx, part.ID)
		assert.Zero(t, got.Quantity)
	})

	t.Run("stock insuficiente no persiste nada", func(t *testing.T) {
		f := newFixture()
		part := f.createBolt(t)
		_, err := f.moves.PostStockOut(ctx, dto.CreateStockOutRequest{
			BusinessID: "OUT1", SparePartID: part.ID, Quantity: 11, UnitPrice: dec("2"), ApprovedBy: "Luis",
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		assert.Contains(t, err.Error(), "disponible 10")

		got, _ := f.parts.GetByID(ctx, part.ID)
		assert.Equal(t, 10, got.Quantity)
		list, _ := f.moves.ListStockOut(ctx)
		assert.Empty(t, list)
	})

	t.Run("repuesto inexistente", func(t *testing.T) {
		f := newFixture()
		_, err := f.moves.PostStockOut(ctx, dto.CreateStockOutRequest{
			BusinessID: "OUT1", SparePartID: "nope", Quantity: 1, UnitPrice: dec("2"), ApprovedBy: "Luis",
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

// drainingRepo simula una salida concurrente que consume la existencia
// entre la verificación y el ajuste.
type drainingRepo struct {
	repository.SparePartRepository
	once sync.Once
}

func (r *drainingRepo) AdjustQuantity(ctx context.Context, id string, delta int) (*entity.SparePart, error) {
	r.once.Do(func() {
		part, _ := r.SparePartRepository.GetByID(ctx, id)
		_, _ = r.SparePartRepository.AdjustQuantity(ctx, id, -part.Quantity)
	})
	return r.SparePartRepository.AdjustQuantity(ctx, id, delta)
}

func TestPostStockOut_ConcurrentDrainRollsBack(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	base := memory.NewSparePartRepo(store)
	parts := usecase.NewSparePartUseCase(base)
	outs := memory.NewStockOutRepo(store)
	moves := inventory.NewMovementUseCase(&drainingRepo{SparePartRepository: base}, memory.NewStockInRepo(store), outs, logger.Nop())

	part, err := parts.Create(ctx, dto.CreateSparePartRequest{BusinessID: "SP1", Name: "Bolt", UnitPrice: dec("2"), Quantity: intPtr(10)})
	require.NoError(t, err)

	_, err = moves.PostStockOut(ctx, dto.CreateStockOutRequest{
		BusinessID: "OUT1", SparePartID: part.ID, Quantity: 4, UnitPrice: dec("2"), ApprovedBy: "Luis",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	n, err := outs.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "la salida rechazada debe revertirse")

	got, _ := parts.GetByID(ctx, part.ID)
	assert.Zero(t, got.Quantity)
}

func TestConcurrentStockOut_NeverNegative(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	part := f.createBolt(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = f.moves.PostStockOut(ctx, dto.CreateStockOutRequest{
				BusinessID:  "OUT-" + string(rune('A'+i)),
				SparePartID: part.ID, Quantity: 1, UnitPrice: dec("2"), ApprovedBy: "Luis",
			})
		}(i)
	}
	wg.Wait()

	got, _ := f.parts.GetByID(ctx, part.ID)
	assert.Zero(t, got.Quantity)
	list, err := f.moves.ListStockOut(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 10)
}

func TestMovementEditsDoNotTouchQuantity(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	part := f.createBolt(t)

	in, err := f.moves.PostStockIn(ctx, dto.CreateStockInRequest{BusinessID: "IN1", SparePartID: part.ID, Quantity: 5, ReceivedBy: "Ana"})
	require.NoError(t, err)
	out, err := f.moves.PostStockOut(ctx, dto.CreateStockOutRequest{
		BusinessID: "OUT1", SparePartID: part.ID, Quantity: 3, UnitPrice: dec("2"), ApprovedBy: "Luis",
	})
	require.NoError(t, err)

	updatedIn, err := f.moves.UpdateStockIn(ctx, in.ID, dto.UpdateStockInRequest{Quantity: intPtr(50), Date: day("2024-01-05")})
	require.NoError(t, err)
	assert.Equal(t, 50, updatedIn.Quantity)
	assert.Equal(t, "Ana", updatedIn.ReceivedBy)

	updatedOut, err := f.moves.UpdateStockOut(ctx, out.ID, dto.UpdateStockOutRequest{Quantity: intPtr(7)})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("14").Equal(updatedOut.TotalValue))

	got, _ := f.parts.GetByID(ctx, part.ID)
	assert.Equal(t, 12, got.Quantity)

	require.NoError(t, f.moves.DeleteStockIn(ctx, in.ID))
	require.NoError(t, f.moves.DeleteStockOut(ctx, out.ID))
	got, _ = f.parts.GetByID(ctx, part.ID)
	assert.Equal(t, 12, got.Quantity)

	assert.ErrorIs(t, f.moves.DeleteStockIn(ctx, in.ID), domain.ErrNotFound)
	_, err = f.moves.GetStockOut(ctx, out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.moves.UpdateStockIn(ctx, "nope", dto.UpdateStockInRequest{Quantity: intPtr(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMovementBlankFieldsAreRejected(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	part := f.createBolt(t)
	blank := func(s string) *string { return &s }

	creates := map[string]func() error{
		"entrada sin código": func() error {
			_, err := f.moves.PostStockIn(ctx, dto.CreateStockInRequest{BusinessID: " ", SparePartID: part.ID, Quantity: 1, ReceivedBy: "Ana"})
			return err
		},
		"entrada sin receptor": func() error {
			_, err := f.moves.PostStockIn(ctx, dto.CreateStockInRequest{BusinessID: "IN1", SparePartID: part.ID, Quantity: 1, ReceivedBy: "  "})
			return err
		},
		"salida sin código": func() error {
			_, err := f.moves.PostStockOut(ctx, dto.CreateStockOutRequest{
				BusinessID: "\t", SparePartID: part.ID, Quantity: 1, UnitPrice: dec("2"), ApprovedBy: "Luis",
			})
			return err
		},
		"salida sin aprobador": func() error {
			_, err := f.moves.PostStockOut(ctx, dto.CreateStockOutRequest{
				BusinessID: "OUT1", SparePartID: part.ID, Quantity: 1, UnitPrice: dec("2"), ApprovedBy: " ",
			})
			return err
		},
	}
	for name, create := range creates {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, create(), domain.ErrInvalidInput)
		})
	}

	got, _ := f.parts.GetByID(ctx, part.ID)
	assert.Equal(t, 10, got.Quantity)
	ins, _ := f.moves.ListStockIn(ctx)
	assert.Empty(t, ins)
	outs, _ := f.moves.ListStockOut(ctx)
	assert.Empty(t, outs)

	in, err := f.moves.PostStockIn(ctx, dto.CreateStockInRequest{BusinessID: "IN1", SparePartID: part.ID, Quantity: 1, ReceivedBy: "Ana"})
	require.NoError(t, err)
	out, err := f.moves.PostStockOut(ctx, dto.CreateStockOutRequest{
		BusinessID: "OUT1", SparePartID: part.ID, Quantity: 1, UnitPrice: dec("2"), ApprovedBy: "Luis",
	})
	require.NoError(t, err)

	_, err = f.moves.UpdateStockIn(ctx, in.ID, dto.UpdateStockInRequest{ReceivedBy: blank("   ")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.moves.UpdateStockOut(ctx, out.ID, dto.UpdateStockOutRequest{ApprovedBy: blank(" ")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	gotIn, err := f.moves.GetStockIn(ctx, in.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", gotIn.ReceivedBy)
	gotOut, err := f.moves.GetStockOut(ctx, out.ID)
	require.NoError(t, err)
	assert.Equal(t, "Luis", gotOut.ApprovedBy)
}

func TestDanglingReference(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	part := f.createBolt(t)
	in, err := f.moves.PostStockIn(ctx, dto.CreateStockInRequest{BusinessID: "IN1", SparePartID: part.ID, Quantity: 1, ReceivedBy: "Ana"})
	require.NoError(t, err)

	require.NoError(t, f.parts.Delete(ctx, part.ID))

	got, err := f.moves.GetStockIn(ctx, in.ID)
	require.NoError(t, err)
	assert.Nil(t, got.SparePart)
	assert.Equal(t, part.ID, got.SparePartID)

	history, err := f.moves.ListMovementHistory(ctx, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, entity.MissingSparePartName, history[0].SparePartName)
}

func TestListMovementHistory(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	part := f.createBolt(t)

	post := func(kind, id, date string) {
		t.Helper()
		var err error
		if kind == entity.MovementTypeIN {
			_, err = f.moves.PostStockIn(ctx, dto.CreateStockInRequest{BusinessID: id, SparePartID: part.ID, Quantity: 1, Date: day(date), ReceivedBy: "Ana"})
		} else {
			_, err = f.moves.PostStockOut(ctx, dto.CreateStockOutRequest{BusinessID: id, SparePartID: part.ID, Quantity: 1, Date: day(date), UnitPrice: dec("2"), ApprovedBy: "Luis"})
		}
		require.NoError(t, err)
	}
	post(entity.MovementTypeIN, "IN1", "2024-01-01")
	post(entity.MovementTypeIN, "IN2", "2024-01-03")
	post(entity.MovementTypeOUT, "OUT1", "2024-01-02")
	post(entity.MovementTypeOUT, "OUT2", "2024-01-03")

	history, err := f.moves.ListMovementHistory(ctx, 0)
	require.NoError(t, err)
	ids := make([]string, 0, len(history))
	for _, e := range history {
		ids = append(ids, e.BusinessID)
	}
	assert.Equal(t, []string{"IN2", "OUT2", "OUT1", "IN1"}, ids)
	assert.Equal(t, entity.MovementTypeIN, history[0].Type)
	assert.Equal(t, "Ana", history[0].Actor)
	assert.Equal(t, "Bolt", history[0].SparePartName)
	assert.Equal(t, entity.MovementTypeOUT, history[1].Type)
	assert.Equal(t, "Luis", history[1].Actor)

	limited, err := f.moves.History(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, limited.Total)
	assert.Equal(t, "IN2", limited.Items[0].BusinessID)
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	part := f.createBolt(t)
	_, err := f.parts.Create(ctx, dto.CreateSparePartRequest{BusinessID: "SP2", Name: "Tuerca", UnitPrice: dec("0.5"), Quantity: intPtr(4)})
	require.NoError(t, err)
	_, err = f.moves.PostStockIn(ctx, dto.CreateStockInRequest{BusinessID: "IN1", SparePartID: part.ID, Quantity: 5, ReceivedBy: "Ana"})
	require.NoError(t, err)

	summary, err := f.moves.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalSpareParts)
	assert.EqualValues(t, 1, summary.TotalStockIn)
	assert.EqualValues(t, 0, summary.TotalStockOut)
	assert.True(t, decimal.RequireFromString("32").Equal(summary.InventoryValue), summary.InventoryValue.String())
}

// recordingRunner simula una transacción: aplica las escrituras solo si fn termina sin error.
type recordingRunner struct {
	repos     inventory.Repos
	calls     int
	rollbacks int
}

func (r *recordingRunner) Run(_ context.Context, fn func(inventory.Repos) error) error {
	r.calls++
	if err := fn(r.repos); err != nil {
		r.rollbacks++
		return err
	}
	return nil
}

func TestMovementUseCase_WithTxRunner(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	part := f.createBolt(t)

	partRepo := memory.NewSparePartRepo(f.store)
	runner := &recordingRunner{repos: inventory.Repos{
		Parts: partRepo,
		Ins:   memory.NewStockInRepo(f.store),
		Outs:  memory.NewStockOutRepo(f.store),
	}}
	moves := inventory.NewMovementUseCase(partRepo, runner.repos.Ins, runner.repos.Outs, logger.Nop()).WithTxRunner(runner)

	_, err := moves.PostStockIn(ctx, dto.CreateStockInRequest{BusinessID: "IN1", SparePartID: part.ID, Quantity: 2, ReceivedBy: "Ana"})
	require.NoError(t, err)
	_, err = moves.PostStockOut(ctx, dto.CreateStockOutRequest{BusinessID: "OUT1", SparePartID: part.ID, Quantity: 3, UnitPrice: dec("2"), ApprovedBy: "Luis"})
	require.NoError(t, err)
	assert.Equal(t, 2, runner.calls)
	assert.Zero(t, runner.rollbacks)

	// La validación previa no abre transacción.
	_, err = moves.PostStockOut(ctx, dto.CreateStockOutRequest{BusinessID: "OUT2", SparePartID: part.ID, Quantity: 100, UnitPrice: dec("2"), ApprovedBy: "Luis"})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 2, runner.calls)

	got, err := f.parts.GetByID(ctx, part.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, got.Quantity)
}
