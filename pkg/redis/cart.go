package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	redisclient "github.com/redis/go-redis/v9"

	"everafterpress.ca/stationery/api/pkg/models"
	"everafterpress.ca/stationery/api/pkg/money"
)

// Cart operations using Redis Hashes. A custom stationery order enters the
// generic checkout path as a synthetic deposit line whose customizations
// map carries the quote's display details.

const cartTTL = 1 * time.Hour

// ErrItemNotFound means the cart holds no line with the requested SKU.
var ErrItemNotFound = errors.New("item not found in cart")

// GetCart retrieves a cart by session ID, returning an empty cart when no
// keys exist yet.
func GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	client := RedisClient()
	defer client.Close()

	cartKey := fmt.Sprintf("cart:%s", sessionID)

	exists, err := client.Exists(ctx, cartKey).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return createEmptyCart(sessionID), nil
	}

	cartData, err := client.HGetAll(ctx, cartKey).Result()
	if err != nil {
		return nil, err
	}

	itemPattern := fmt.Sprintf("cart:%s:item:*", sessionID)
	itemKeys, err := client.Keys(ctx, itemPattern).Result()
	if err != nil {
		return nil, err
	}

	items := make(map[string]*models.CartItem)
	for _, itemKey := range itemKeys {
		itemData, err := client.HGetAll(ctx, itemKey).Result()
		if err != nil {
			continue
		}
		item := parseCartItem(itemData)
		items[item.SKU] = item
	}

	cart := &models.Cart{
		SessionID: sessionID,
		Items:     items,
	}

	if subtotal, err := strconv.ParseInt(cartData["subtotal"], 10, 64); err == nil {
		cart.Subtotal = money.Cents(subtotal)
	}
	if total, err := strconv.ParseInt(cartData["total"], 10, 64); err == nil {
		cart.Total = money.Cents(total)
	}
	if itemCount, err := strconv.Atoi(cartData["item_count"]); err == nil {
		cart.ItemCount = itemCount
	}
	cart.LastUpdated = cartData["last_updated"]
	cart.ExpiresAt = cartData["expires_at"]

	return cart, nil
}

// AddDepositLine puts the synthetic deposit product for a quote into the
// session cart. Re-adding the same quote's deposit replaces the line
// rather than duplicating it.
func AddDepositLine(ctx context.Context, sessionID string, quote *models.Quote) (*models.Cart, error) {
	client := RedisClient()
	defer client.Close()

	cart, err := GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	sku := models.DepositSKUPrefix + quote.QuoteNumber
	cart.Items[sku] = &models.CartItem{
		SKU:            sku,
		ProductName:    "Custom Invitation Deposit",
		QuoteID:        quote.ID.Hex(),
		Price:          quote.TotalPrice,
		Quantity:       1,
		Subtotal:       quote.TotalPrice,
		Customizations: quote.DisplayDetails,
		AddedAt:        now,
	}

	calculateCartTotals(cart)
	cart.LastUpdated = now
	cart.ExpiresAt = time.Now().Add(cartTTL).UTC().Format(time.RFC3339)

	if err := saveCartToRedis(ctx, client, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveFromCart deletes one line from the cart.
func RemoveFromCart(ctx context.Context, sessionID, sku string) (*models.Cart, error) {
	client := RedisClient()
	defer client.Close()

	cart, err := GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := removeLine(cart, sku); err != nil {
		return nil, err
	}
	client.Del(ctx, fmt.Sprintf("cart:%s:item:%s", sessionID, sku))

	calculateCartTotals(cart)
	cart.LastUpdated = time.Now().UTC().Format(time.RFC3339)

	if err := saveCartToRedis(ctx, client, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// ClearCart removes all cart keys for a session.
func ClearCart(ctx context.Context, sessionID string) error {
	client := RedisClient()
	defer client.Close()

	cartPattern := fmt.Sprintf("cart:%s*", sessionID)
	keys, err := client.Keys(ctx, cartPattern).Result()
	if err != nil {
		return err
	}

	if len(keys) > 0 {
		return client.Del(ctx, keys...).Err()
	}
	return nil
}

// Helper functions

func removeLine(cart *models.Cart, sku string) error {
	if _, exists := cart.Items[sku]; !exists {
		return ErrItemNotFound
	}
	delete(cart.Items, sku)
	return nil
}

func createEmptyCart(sessionID string) *models.Cart {
	now := time.Now().UTC().Format(time.RFC3339)
	return &models.Cart{
		SessionID:   sessionID,
		Items:       make(map[string]*models.CartItem),
		LastUpdated: now,
		ExpiresAt:   time.Now().Add(cartTTL).UTC().Format(time.RFC3339),
	}
}

func calculateCartTotals(cart *models.Cart) {
	cart.Subtotal = 0
	cart.ItemCount = 0

	for _, item := range cart.Items {
		cart.Subtotal += item.Subtotal
		cart.ItemCount += item.Quantity
	}

	// Deposits are charged as-is; taxes and shipping are settled on the
	// final balance invoice, not the deposit.
	cart.Total = cart.Subtotal
}

func parseCartItem(itemData map[string]string) *models.CartItem {
	item := &models.CartItem{}
	item.SKU = itemData["sku"]
	item.ProductName = itemData["product_name"]
	item.QuoteID = itemData["quote_id"]
	if price, err := strconv.ParseInt(itemData["price"], 10, 64); err == nil {
		item.Price = money.Cents(price)
	}
	if qty, err := strconv.Atoi(itemData["quantity"]); err == nil {
		item.Quantity = qty
	}
	if subtotal, err := strconv.ParseInt(itemData["subtotal"], 10, 64); err == nil {
		item.Subtotal = money.Cents(subtotal)
	}
	if raw, ok := itemData["customizations"]; ok && raw != "" {
		var customizations map[string]string
		if err := json.Unmarshal([]byte(raw), &customizations); err == nil {
			item.Customizations = customizations
		}
	}
	item.AddedAt = itemData["added_at"]
	return item
}

func saveCartToRedis(ctx context.Context, client *redisclient.Client, cart *models.Cart) error {
	cartKey := fmt.Sprintf("cart:%s", cart.SessionID)

	cartData := map[string]interface{}{
		"subtotal":     strconv.FormatInt(int64(cart.Subtotal), 10),
		"total":        strconv.FormatInt(int64(cart.Total), 10),
		"item_count":   strconv.Itoa(cart.ItemCount),
		"last_updated": cart.LastUpdated,
		"expires_at":   cart.ExpiresAt,
	}

	if err := client.HSet(ctx, cartKey, cartData).Err(); err != nil {
		return err
	}
	client.Expire(ctx, cartKey, cartTTL)

	for sku, item := range cart.Items {
		itemKey := fmt.Sprintf("cart:%s:item:%s", cart.SessionID, sku)
		itemData := map[string]interface{}{
			"sku":          item.SKU,
			"product_name": item.ProductName,
			"quote_id":     item.QuoteID,
			"price":        strconv.FormatInt(int64(item.Price), 10),
			"quantity":     strconv.Itoa(item.Quantity),
			"subtotal":     strconv.FormatInt(int64(item.Subtotal), 10),
			"added_at":     item.AddedAt,
		}
		if len(item.Customizations) > 0 {
			raw, err := json.Marshal(item.Customizations)
			if err != nil {
				return fmt.Errorf("failed to marshal customizations for %s: %w", sku, err)
			}
			itemData["customizations"] = string(raw)
		}

		if err := client.HSet(ctx, itemKey, itemData).Err(); err != nil {
			return err
		}
		client.Expire(ctx, itemKey, cartTTL)
	}

	return nil
}
