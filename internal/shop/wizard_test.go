package shop

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizard_FullFlow(t *testing.T) {
	svc := NewService(NewInfra(setupTestDB(t)))
	w := NewWizard(svc)
	ctx := context.Background()

	prompt := w.Start(42)
	assert.Contains(t, prompt, "название")
	assert.True(t, w.Active(42))

	prompt, done, err := w.Input(ctx, 42, "Футболка")
	require.NoError(t, err)
	assert.False(t, done)
	assert.Contains(t, prompt, "описание")

	prompt, done, err = w.Input(ctx, 42, "Хлопок, размер L")
	require.NoError(t, err)
	assert.False(t, done)
	assert.Contains(t, prompt, "цену")

	prompt, done, err = w.Input(ctx, 42, "1500")
	require.NoError(t, err)
	assert.False(t, done)
	assert.Contains(t, prompt, "фото")

	prompt, done, err = w.Input(ctx, 42, "-")
	require.NoError(t, err)
	assert.True(t, done)
	assert.Contains(t, prompt, "Футболка")
	assert.False(t, w.Active(42))

	products, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Футболка", products[0].Name)
	assert.Equal(t, "Хлопок, размер L", products[0].Description)
	assert.Equal(t, int64(1500), products[0].Price)
	assert.Equal(t, "", products[0].Photo)
}

func TestWizard_RepromptsOnBadInput(t *testing.T) {
	svc := NewService(NewInfra(setupTestDB(t)))
	w := NewWizard(svc)
	ctx := context.Background()

	w.Start(42)

	// пустое имя не двигает шаг
	prompt, done, err := w.Input(ctx, 42, "   ")
	require.NoError(t, err)
	assert.False(t, done)
	assert.Contains(t, prompt, "пустым")

	_, _, err = w.Input(ctx, 42, "Кружка")
	require.NoError(t, err)
	_, _, err = w.Input(ctx, 42, "")
	require.NoError(t, err)

	// нечисловая и неположительная цена переспрашиваются
	prompt, done, err = w.Input(ctx, 42, "дорого")
	require.NoError(t, err)
	assert.False(t, done)
	assert.Contains(t, prompt, "Цена")

	prompt, done, err = w.Input(ctx, 42, "-5")
	require.NoError(t, err)
	assert.False(t, done)
	assert.Contains(t, prompt, "Цена")

	_, done, err = w.Input(ctx, 42, "300")
	require.NoError(t, err)
	assert.False(t, done)

	_, done, err = w.Input(ctx, 42, "file-id-123")
	require.NoError(t, err)
	assert.True(t, done)

	products, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "file-id-123", products[0].Photo)
}

func TestWizard_CancelDropsDraft(t *testing.T) {
	svc := NewService(NewInfra(setupTestDB(t)))
	w := NewWizard(svc)
	ctx := context.Background()

	w.Start(42)
	_, _, err := w.Input(ctx, 42, "Кружка")
	require.NoError(t, err)

	w.Cancel(42)
	assert.False(t, w.Active(42))

	// брошенный черновик ничего не оставляет в каталоге
	products, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestWizard_InputWithoutDraft(t *testing.T) {
	w := NewWizard(NewService(NewInfra(setupTestDB(t))))

	prompt, done, err := w.Input(context.Background(), 42, "hello")
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, "", prompt)
}

func TestWizard_ConcurrentInput(t *testing.T) {
	svc := NewService(NewInfra(setupTestDB(t)))
	w := NewWizard(svc)
	ctx := context.Background()

	w.Start(42)

	// апдейты приходят из разных горутин; шаги одного черновика
	// должны применяться строго по одному
	var wg sync.WaitGroup
	inputs := []string{"Футболка", "Хлопок", "1500", "-"}
	for _, in := range inputs {
		wg.Add(1)
		go func(in string) {
			defer wg.Done()
			_, _, err := w.Input(ctx, 42, in)
			assert.NoError(t, err)
		}(in)
	}
	wg.Wait()

	// порядок доставки не гарантирован, но мастер один:
	// больше одного товара из четырёх вводов не бывает
	products, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(products), 1)
}

func TestWizard_DraftsAreIndependent(t *testing.T) {
	svc := NewService(NewInfra(setupTestDB(t)))
	w := NewWizard(svc)
	ctx := context.Background()

	w.Start(1)
	w.Start(2)

	_, _, err := w.Input(ctx, 1, "Товар-1")
	require.NoError(t, err)

	// пользователь 2 всё ещё на шаге имени
	prompt, done, err := w.Input(ctx, 2, "")
	require.NoError(t, err)
	assert.False(t, done)
	assert.Contains(t, prompt, "пустым")
}
