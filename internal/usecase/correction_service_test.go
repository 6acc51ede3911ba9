package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/salesbot/backend/internal/domain"
	"github.com/salesbot/backend/internal/infrastructure/cache"
	"github.com/salesbot/backend/internal/lexicon"
	"github.com/salesbot/backend/internal/shops"
	"github.com/salesbot/backend/internal/spell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(cfg CorrectionServiceConfig) (*CorrectionService, *cache.MemoryCache) {
	lex := lexicon.New([]string{"cerstve", "mleko", "maslo", "jogurt", "plnotucne"})
	checker := spell.NewChecker(lex.Words())
	memoryCache := cache.NewMemoryCache()

	service := NewCorrectionService(
		memoryCache,
		lex,
		checker,
		shops.NewRegistry(),
		Corpora{
			Prices:            []string{"17.90", "24.90", "129.00"},
			Measures:          []string{"250 g", "500 g", "1 kg", "0.5 l"},
			Percents:          []string{"-20%", "-30%", "-50%"},
			PerUnitQuantities: []string{"100g", "1kg", "1l"},
			PerUnitPrices:     []string{"17.90 Kč", "24.90 Kč"},
		},
		cfg,
	)
	return service, memoryCache
}

func TestCorrectFieldName(t *testing.T) {
	service, _ := newTestService(CorrectionServiceConfig{})
	ctx := context.Background()

	t.Run("segments a glued name", func(t *testing.T) {
		c, err := service.CorrectField(ctx, domain.DetectedField{
			ShopName: "Lidl",
			Class:    domain.ClassName,
			RawText:  "CerstveMleko Plnotucne",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCorrected, c.Status)
		assert.Equal(t, "cerstve mleko plnotucne", c.CorrectedText)
	})

	t.Run("noise surfaces as residual", func(t *testing.T) {
		c, err := service.CorrectField(ctx, domain.DetectedField{
			ShopName: "Lidl",
			Class:    domain.ClassName,
			RawText:  "masloxx",
		})
		require.NoError(t, err)
		assert.Equal(t, "maslo", c.CorrectedText)
		assert.Equal(t, []string{"xx"}, c.Residual)
	})

	t.Run("blank text is empty", func(t *testing.T) {
		c, err := service.CorrectField(ctx, domain.DetectedField{
			ShopName: "Lidl",
			Class:    domain.ClassName,
			RawText:  "   ",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusEmpty, c.Status)
	})

	t.Run("missing shop name is invalid", func(t *testing.T) {
		_, err := service.CorrectField(ctx, domain.DetectedField{
			Class:   domain.ClassName,
			RawText: "mleko",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})
}

func TestCorrectFieldPrice(t *testing.T) {
	service, _ := newTestService(CorrectionServiceConfig{})
	ctx := context.Background()

	t.Run("parses through the shop registry", func(t *testing.T) {
		c, err := service.CorrectField(ctx, domain.DetectedField{
			ShopName: "Penny",
			Class:    domain.ClassPrice,
			RawText:  "CENA BE Z PENNY KART Y 8490",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCorrected, c.Status)
		require.NotNil(t, c.Price)
		require.NotNil(t, c.Price.ItemPrice)
		assert.Equal(t, 84.9, *c.Price.ItemPrice)
	})

	t.Run("unsupported shop keeps the fragment with a status", func(t *testing.T) {
		c, err := service.CorrectField(ctx, domain.DetectedField{
			ShopName: "Corner Store",
			Class:    domain.ClassPrice,
			RawText:  "17 90",
		})
		assert.ErrorIs(t, err, domain.ErrUnsupportedShop)
		require.NotNil(t, c)
		assert.Equal(t, domain.StatusUnsupportedShop, c.Status)
	})

	t.Run("parser finding nothing is empty", func(t *testing.T) {
		c, err := service.CorrectField(ctx, domain.DetectedField{
			ShopName: "Tesco Supermarket",
			Class:    domain.ClassPrice,
			RawText:  "-30%",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusEmpty, c.Status)
	})
}

func TestCorrectFieldCorpusClasses(t *testing.T) {
	service, _ := newTestService(CorrectionServiceConfig{})
	ctx := context.Background()

	t.Run("volume", func(t *testing.T) {
		c, err := service.CorrectField(ctx, domain.DetectedField{
			ShopName: "Lidl",
			Class:    domain.ClassVolume,
			RawText:  "500 q",
		})
		require.NoError(t, err)
		assert.Equal(t, "500 g", c.CorrectedText)
	})

	t.Run("percent", func(t *testing.T) {
		c, err := service.CorrectField(ctx, domain.DetectedField{
			ShopName: "Lidl",
			Class:    domain.ClassPercent,
			RawText:  "-3O%",
		})
		require.NoError(t, err)
		assert.Equal(t, "-30%", c.CorrectedText)
	})

	t.Run("price per unit", func(t *testing.T) {
		c, err := service.CorrectField(ctx, domain.DetectedField{
			ShopName: "Lidl",
			Class:    domain.ClassPricePerUnit,
			RawText:  "10Og=17.9O Kc",
		})
		require.NoError(t, err)
		assert.Equal(t, "100g=17.90 Kč", c.CorrectedText)
	})

	t.Run("exhausted budget degrades to the raw text", func(t *testing.T) {
		tight, _ := newTestService(CorrectionServiceConfig{QueryTimeout: time.Nanosecond})

		c, err := tight.CorrectField(ctx, domain.DetectedField{
			ShopName: "Lidl",
			Class:    domain.ClassVolume,
			RawText:  "500 q",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusUncorrected, c.Status)
		assert.Equal(t, "500 q", c.CorrectedText)
	})
}

func TestCorrectFieldUnknownClass(t *testing.T) {
	service, _ := newTestService(CorrectionServiceConfig{})

	c, err := service.CorrectField(context.Background(), domain.DetectedField{
		ShopName: "Lidl",
		Class:    domain.ClassUnknown,
		RawText:  "whatever",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUncorrected, c.Status)
	assert.Equal(t, "whatever", c.CorrectedText)
}

func TestCorrectFieldCaching(t *testing.T) {
	service, memoryCache := newTestService(CorrectionServiceConfig{})
	ctx := context.Background()

	field := domain.DetectedField{
		ShopName: "Lidl",
		Class:    domain.ClassName,
		RawText:  "CerstveMleko",
	}

	first, err := service.CorrectField(ctx, field)
	require.NoError(t, err)
	require.Equal(t, 1, memoryCache.Size())

	second, err := service.CorrectField(ctx, field)
	require.NoError(t, err)
	assert.Same(t, first, second, "second call should return the cached correction")

	t.Run("uncorrected results are not cached", func(t *testing.T) {
		tight, tightCache := newTestService(CorrectionServiceConfig{QueryTimeout: time.Nanosecond})
		_, err := tight.CorrectField(ctx, domain.DetectedField{
			ShopName: "Lidl",
			Class:    domain.ClassVolume,
			RawText:  "500 q",
		})
		require.NoError(t, err)
		assert.Equal(t, 0, tightCache.Size())
	})
}

func TestCorrectObjects(t *testing.T) {
	service, _ := newTestService(CorrectionServiceConfig{})

	fields := []domain.DetectedField{
		{ShopName: "Lidl", Class: domain.ClassName, RawText: "CerstveMleko"},
		{ShopName: "Lidl", Class: domain.ClassPrice, RawText: "17 90"},
		{ShopName: "Lidl", Class: domain.ClassPercent, RawText: "-30%"},
		{ShopName: "Lidl", Class: domain.ClassPrice, RawText: ""},
	}

	corrections := service.CorrectObjects(context.Background(), fields)

	require.Len(t, corrections, len(fields))
	assert.Equal(t, "cerstve mleko", corrections[0].CorrectedText)
	require.NotNil(t, corrections[1].Price)
	require.NotNil(t, corrections[1].Price.ItemPrice)
	assert.Equal(t, 17.9, *corrections[1].Price.ItemPrice)
	assert.Equal(t, "-30%", corrections[2].CorrectedText)
	assert.Equal(t, domain.StatusEmpty, corrections[3].Status)
}

func TestShops(t *testing.T) {
	service, _ := newTestService(CorrectionServiceConfig{})

	shopNames := service.Shops()
	require.NotEmpty(t, shopNames)
	assert.Contains(t, shopNames, "Kaufland")
}
