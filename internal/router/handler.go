package router

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"everafterpress.ca/stationery/api/pkg/ai"
	"everafterpress.ca/stationery/api/pkg/catalog"
	"everafterpress.ca/stationery/api/pkg/global"
	"everafterpress.ca/stationery/api/pkg/models"
	"everafterpress.ca/stationery/api/pkg/mongo"
	"everafterpress.ca/stationery/api/pkg/pricing"
	"everafterpress.ca/stationery/api/pkg/redis"
)

func HealthCheck(c *gin.Context) {
	db := mongo.GetDatabase()
	if err := db.Client().Ping(c, nil); err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Database connection failed", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"status": "OK", "database": "Connected"}))
}

// GetCatalog returns every option list keyed by category, plus the
// permitted quantity tiers. The UI builds the whole configurator from
// this one response.
func GetCatalog(c *gin.Context) {
	reg := catalog.Default()

	lists := make(map[string][]models.PricingOption)
	for _, category := range reg.Categories() {
		opts, err := reg.ListFor(category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to load catalog", nil))
			return
		}
		lists[string(category)] = opts
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"categories": lists,
		"quantities": reg.QuantityTiers(),
	}))
}

func GetCatalogCategory(c *gin.Context) {
	reg := catalog.Default()

	opts, err := reg.ListFor(catalog.Category(c.Param("category")))
	if err != nil {
		c.JSON(http.StatusNotFound, global.ErrorResponse("Unknown catalog category", []global.ValidationError{
			{Field: "category", Message: err.Error(), Code: "not_found"},
		}))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(opts))
}

func GetQuantityTiers(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(catalog.Default().QuantityTiers()))
}

// GetFolioMaterials returns the material list scoped to a folio style.
func GetFolioMaterials(c *gin.Context) {
	styleID := c.Param("styleId")

	materials, err := catalog.Default().MaterialsFor(styleID)
	if err != nil {
		c.JSON(http.StatusNotFound, global.ErrorResponse("Unknown folio style", []global.ValidationError{
			{Field: "styleId", Message: err.Error(), Code: "not_found"},
		}))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(materials))
}

// GetInserts returns the insert list for a print method (foil or digital).
func GetInserts(c *gin.Context) {
	method := models.InsertPrintMethod(c.Param("method"))

	inserts, err := catalog.Default().InsertsFor(method)
	if err != nil {
		c.JSON(http.StatusNotFound, global.ErrorResponse("Unknown insert print method", []global.ValidationError{
			{Field: "method", Message: err.Error(), Code: "not_found"},
		}))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(inserts))
}

// GetConfiguratorDefaults returns a fresh configuration with every slot
// at its list's first entry, for seeding a new design session.
func GetConfiguratorDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(catalog.Default().NewConfiguration()))
}

// PreviewQuote prices a configuration without persisting anything. The UI
// calls this on every edit; the same path runs again at save time, so the
// previewed total and the stored total cannot drift.
func PreviewQuote(c *gin.Context) {
	reg := catalog.Default()

	// Defaults-first binding: absent fields keep their default selections.
	cfg := reg.NewConfiguration()
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid configuration data", []global.ValidationError{
			{Field: "configuration", Message: err.Error(), Code: "json_parse_error"},
		}))
		return
	}

	preview, err := pricing.PreviewConfiguration(cfg, reg)
	if err != nil {
		respondPricingError(c, err)
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(preview))
}

// CreateQuote builds and persists a quote snapshot, caches it, and
// returns the notification payload the email collaborator consumes.
func CreateQuote(c *gin.Context) {
	reg := catalog.Default()

	req := models.SaveQuoteRequest{Configuration: reg.NewConfiguration()}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	quote, err := pricing.BuildQuote(req.Configuration, reg, req.UserID)
	if err != nil {
		respondPricingError(c, err)
		return
	}

	ctx := c.Request.Context()
	created, err := mongo.CreateQuote(ctx, quote)
	if err != nil {
		log.Printf("Error creating quote in MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to save quote", nil))
		return
	}

	if cacheErr := redis.CacheQuote(ctx, created); cacheErr != nil {
		// Log cache error but don't fail the request since the DB write succeeded
		log.Printf("Warning: Failed to cache quote in Redis: %v", cacheErr)
	}

	// The notification payload is handed to the email collaborator; the
	// transport itself lives outside this service.
	c.JSON(http.StatusCreated, global.SuccessResponse(map[string]interface{}{
		"quote":        created,
		"notification": pricing.Notification(created),
	}))
}

// GetQuoteByID retrieves a quote with Redis caching.
func GetQuoteByID(c *gin.Context) {
	quoteID := c.Param("id")

	objectID, err := bson.ObjectIDFromHex(quoteID)
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid quote ID format", []global.ValidationError{
			{Field: "id", Message: "Must be a valid MongoDB ObjectID", Code: "invalid_format"},
		}))
		return
	}

	ctx := c.Request.Context()

	// Try Redis cache first
	quote, err := redis.GetQuoteFromCache(ctx, quoteID)
	if err == nil {
		c.Header("X-Cache", "HIT")
		c.JSON(http.StatusOK, global.SuccessResponse(quote))
		return
	}

	quote, err = mongo.GetQuoteByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, mongo.ErrQuoteNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Quote not found", []global.ValidationError{
				{Field: "id", Message: "No quote exists with this ID", Code: "not_found"},
			}))
			return
		}
		log.Printf("Error fetching quote from MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch quote", nil))
		return
	}

	if cacheErr := redis.CacheQuote(ctx, quote); cacheErr != nil {
		log.Printf("Warning: Failed to cache quote in Redis: %v", cacheErr)
	}

	c.Header("X-Cache", "MISS")
	c.JSON(http.StatusOK, global.SuccessResponse(quote))
}

func GetQuotesByUser(c *gin.Context) {
	userID := c.GetString("userId")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	quotes, total, err := mongo.GetQuotesByUser(c.Request.Context(), userID, page, limit)
	if err != nil {
		log.Printf("Error listing quotes from MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch quotes", nil))
		return
	}

	c.Header("X-Total-Count", strconv.FormatInt(total, 10))
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"quotes": quotes,
		"total":  total,
		"page":   page,
		"limit":  limit,
	}))
}

// OrderQuote performs the saved -> ordered transition.
func OrderQuote(c *gin.Context) {
	objectID, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid quote ID format", []global.ValidationError{
			{Field: "id", Message: "Must be a valid MongoDB ObjectID", Code: "invalid_format"},
		}))
		return
	}

	ctx := c.Request.Context()
	quote, err := mongo.MarkQuoteOrdered(ctx, objectID)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrQuoteNotFound):
			c.JSON(http.StatusNotFound, global.ErrorResponse("Quote not found", []global.ValidationError{
				{Field: "id", Message: "No quote exists with this ID", Code: "not_found"},
			}))
		case errors.Is(err, mongo.ErrQuoteNotOrderable):
			c.JSON(http.StatusConflict, global.ErrorResponse("Quote already ordered", []global.ValidationError{
				{Field: "id", Message: "Only saved quotes can be ordered", Code: "invalid_transition"},
			}))
		default:
			log.Printf("Error ordering quote in MongoDB: %v", err)
			c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to order quote", nil))
		}
		return
	}

	if cacheErr := redis.CacheQuote(ctx, quote); cacheErr != nil {
		log.Printf("Warning: Failed to refresh quote cache in Redis: %v", cacheErr)
	}

	c.Header("X-Cache", "REFRESHED")
	c.JSON(http.StatusOK, global.SuccessResponse(quote))
}

// DeleteQuote removes a saved quote from storage and cache.
func DeleteQuote(c *gin.Context) {
	quoteID := c.Param("id")

	objectID, err := bson.ObjectIDFromHex(quoteID)
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid quote ID format", []global.ValidationError{
			{Field: "id", Message: "Must be a valid MongoDB ObjectID", Code: "invalid_format"},
		}))
		return
	}

	ctx := c.Request.Context()
	if err := mongo.DeleteQuote(ctx, objectID); err != nil {
		switch {
		case errors.Is(err, mongo.ErrQuoteNotFound):
			c.JSON(http.StatusNotFound, global.ErrorResponse("Quote not found", []global.ValidationError{
				{Field: "id", Message: "No quote exists with this ID", Code: "not_found"},
			}))
		case errors.Is(err, mongo.ErrQuoteNotDeletable):
			c.JSON(http.StatusConflict, global.ErrorResponse("Cannot delete ordered quote", []global.ValidationError{
				{Field: "id", Message: "Ordered quotes back a deposit and are retained", Code: "invalid_operation"},
			}))
		default:
			log.Printf("Error deleting quote from MongoDB: %v", err)
			c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to delete quote", nil))
		}
		return
	}

	if cacheErr := redis.RemoveQuoteFromCache(ctx, quoteID); cacheErr != nil {
		log.Printf("Warning: Failed to remove quote from Redis cache: %v", cacheErr)
	}

	c.Header("X-Cache", "DELETED")
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"message": "Quote successfully deleted",
	}))
}

// GetQuoteSummary returns the AI-written email body for a saved quote,
// falling back to the deterministic display details when AI is disabled.
func GetQuoteSummary(c *gin.Context) {
	objectID, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid quote ID format", []global.ValidationError{
			{Field: "id", Message: "Must be a valid MongoDB ObjectID", Code: "invalid_format"},
		}))
		return
	}

	ctx := c.Request.Context()
	quote, err := mongo.GetQuoteByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, mongo.ErrQuoteNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Quote not found", []global.ValidationError{
				{Field: "id", Message: "No quote exists with this ID", Code: "not_found"},
			}))
			return
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch quote", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(ai.GenerateQuoteSummary(ctx, quote)))
}

func GetCart(c *gin.Context) {
	cart, err := redis.GetCart(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		log.Printf("Error fetching cart from Redis: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch cart", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(cart))
}

// AddDepositToCart bridges a quote into the generic checkout path as a
// synthetic deposit line carrying the display details as customizations.
func AddDepositToCart(c *gin.Context) {
	objectID, err := bson.ObjectIDFromHex(c.Param("quoteId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid quote ID format", []global.ValidationError{
			{Field: "quoteId", Message: "Must be a valid MongoDB ObjectID", Code: "invalid_format"},
		}))
		return
	}

	ctx := c.Request.Context()
	quote, err := mongo.GetQuoteByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, mongo.ErrQuoteNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Quote not found", []global.ValidationError{
				{Field: "quoteId", Message: "No quote exists with this ID", Code: "not_found"},
			}))
			return
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch quote", nil))
		return
	}

	cart, err := redis.AddDepositLine(ctx, c.Param("sessionId"), quote)
	if err != nil {
		log.Printf("Error adding deposit to cart in Redis: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to add deposit to cart", nil))
		return
	}
	c.JSON(http.StatusCreated, global.SuccessResponse(cart))
}

func RemoveFromCart(c *gin.Context) {
	cart, err := redis.RemoveFromCart(c.Request.Context(), c.Param("sessionId"), c.Param("sku"))
	if err != nil {
		if errors.Is(err, redis.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Item not found in cart", []global.ValidationError{
				{Field: "sku", Message: "No cart line exists with this SKU", Code: "not_found"},
			}))
			return
		}
		log.Printf("Error removing cart item from Redis: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to remove cart item", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(cart))
}

func ClearCart(c *gin.Context) {
	if err := redis.ClearCart(c.Request.Context(), c.Param("sessionId")); err != nil {
		log.Printf("Error clearing cart in Redis: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to clear cart", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"message": "Cart cleared",
	}))
}

// respondPricingError maps engine errors onto HTTP statuses. A
// miscomputed price must never be returned silently, so every pricing
// error is surfaced with its cause.
func respondPricingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pricing.ErrInvalidQuantity):
		c.JSON(http.StatusUnprocessableEntity, global.ErrorResponse("Invalid quantity", []global.ValidationError{
			{Field: "quantity", Message: err.Error(), Code: "invalid_quantity"},
		}))
	case errors.Is(err, pricing.ErrInvalidConfiguration):
		c.JSON(http.StatusUnprocessableEntity, global.ErrorResponse("Invalid configuration", []global.ValidationError{
			{Field: "configuration", Message: err.Error(), Code: "invalid_configuration"},
		}))
	case errors.Is(err, catalog.ErrUnknownStyle):
		c.JSON(http.StatusUnprocessableEntity, global.ErrorResponse("Unknown folio style", []global.ValidationError{
			{Field: "folio.style", Message: err.Error(), Code: "unknown_style"},
		}))
	case errors.Is(err, catalog.ErrUnknownOption), errors.Is(err, catalog.ErrUnknownCategory):
		c.JSON(http.StatusUnprocessableEntity, global.ErrorResponse("Unknown option", []global.ValidationError{
			{Field: "configuration", Message: err.Error(), Code: "unknown_option"},
		}))
	default:
		log.Printf("Error pricing configuration: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to price configuration", nil))
	}
}
