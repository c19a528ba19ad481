package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestProductCRUDAndEffectivePrice(t *testing.T) {
	app, db := newTestApp(t)
	seedAdmin(t, db)
	adminTok := adminLogin(t, app)

	id := createProduct(t, app, adminTok, fiber.Map{
		"name": "Sale Blanket", "description": "Chunky knit",
		"price": 100, "category": "Blankets", "images": []string{"b.jpg"},
		"daysToMake": 7, "shippingCost": 5, "discount": 25,
	})

	// public read carries the computed price
	status, body := do(t, app, jsonReq("GET", "/api/products/"+id, nil, ""))
	if status != http.StatusOK {
		t.Fatalf("get: %d %v", status, body)
	}
	p := body["product"].(map[string]any)
	if p["price"].(float64) != 100 || p["effectivePrice"].(float64) != 75 {
		t.Fatalf("bad prices: %v", p)
	}

	// update clears the discount
	status, body = do(t, app, jsonReq("PUT", "/api/products/"+id, fiber.Map{
		"name": "Sale Blanket", "description": "Chunky knit",
		"price": 100, "category": "Blankets", "images": []string{"b.jpg"},
		"daysToMake": 7, "shippingCost": 5, "discount": 0,
	}, adminTok))
	if status != http.StatusOK {
		t.Fatalf("update: %d %v", status, body)
	}
	p = body["product"].(map[string]any)
	if p["effectivePrice"].(float64) != 100 {
		t.Fatalf("discount removal should restore price: %v", p)
	}

	status, _ = do(t, app, jsonReq("DELETE", "/api/products/"+id, nil, adminTok))
	if status != http.StatusOK {
		t.Fatalf("delete: %d", status)
	}
	status, _ = do(t, app, jsonReq("GET", "/api/products/"+id, nil, ""))
	if status != http.StatusNotFound {
		t.Fatalf("deleted product should be 404, got %d", status)
	}
	status, _ = do(t, app, jsonReq("DELETE", "/api/products/"+id, nil, adminTok))
	if status != http.StatusNotFound {
		t.Fatalf("double delete should be 404, got %d", status)
	}
}

func TestProductListFilters(t *testing.T) {
	app, db := newTestApp(t)
	seedAdmin(t, db)
	adminTok := adminLogin(t, app)

	createProduct(t, app, adminTok, fiber.Map{
		"name": "Bunny Plush", "description": "A bunny",
		"price": 15, "category": "Toys", "images": []string{"x.jpg"},
		"daysToMake": 2, "shippingCost": 1,
	})
	createProduct(t, app, adminTok, fiber.Map{
		"name": "Winter Beanie", "description": "Warm hat",
		"price": 20, "category": "Apparel", "images": []string{"y.jpg"},
		"daysToMake": 2, "shippingCost": 1,
	})

	status, body := do(t, app, jsonReq("GET", "/api/products?category=Toys", nil, ""))
	if status != http.StatusOK || body["count"].(float64) != 1 {
		t.Fatalf("category filter: %d %v", status, body)
	}
	status, body = do(t, app, jsonReq("GET", "/api/products?search=beanie", nil, ""))
	if status != http.StatusOK || body["count"].(float64) != 1 {
		t.Fatalf("search filter: %d %v", status, body)
	}
	status, _ = do(t, app, jsonReq("GET", "/api/products?category=Weapons", nil, ""))
	if status != http.StatusBadRequest {
		t.Fatalf("unknown category should be 400, got %d", status)
	}
}

func TestProductValidationMessages(t *testing.T) {
	app, db := newTestApp(t)
	seedAdmin(t, db)
	adminTok := adminLogin(t, app)

	bad := []fiber.Map{
		{"description": "d", "price": 1, "category": "Toys", "images": []string{"x"}, "daysToMake": 1},
		{"name": "N", "price": 1, "category": "Toys", "images": []string{"x"}, "daysToMake": 1},
		{"name": "N", "description": "d", "price": -1, "category": "Toys", "images": []string{"x"}, "daysToMake": 1},
		{"name": "N", "description": "d", "price": 1, "category": "Nope", "images": []string{"x"}, "daysToMake": 1},
		{"name": "N", "description": "d", "price": 1, "category": "Toys", "daysToMake": 1},
		{"name": "N", "description": "d", "price": 1, "category": "Toys", "images": []string{"x"}, "daysToMake": 0},
		{"name": "N", "description": "d", "price": 1, "category": "Toys", "images": []string{"x"}, "daysToMake": 1, "discount": 150},
	}
	for i, payload := range bad {
		status, body := do(t, app, jsonReq("POST", "/api/products", payload, adminTok))
		if status != http.StatusBadRequest {
			t.Fatalf("case %d should be 400, got %d %v", i, status, body)
		}
		if body["message"] == "" {
			t.Fatalf("case %d should carry a message", i)
		}
	}
}

func TestEmptyCollectionsSerializeAsArrays(t *testing.T) {
	app, db := newTestApp(t)
	seedAdmin(t, db)
	adminTok := adminLogin(t, app)
	clientTok, _ := register(t, app, "a@x.com", "secret1", "Alice", "")

	// a store with no data answers [] everywhere, never null
	for _, c := range []struct{ path, key, token string }{
		{"/api/products", "products", ""},
		{"/api/reviews/product/no-such-product", "reviews", ""},
		{"/api/orders/my-orders", "orders", clientTok},
		{"/api/orders", "orders", adminTok},
		{"/api/notifications", "notifications", clientTok},
		{"/api/journey", "data", ""},
	} {
		status, body := do(t, app, jsonReq("GET", c.path, nil, c.token))
		if status != http.StatusOK {
			t.Fatalf("%s: %d %v", c.path, status, body)
		}
		arr, isArr := body[c.key].([]any)
		if !isArr {
			t.Fatalf("%s: %q should be a JSON array, got %T", c.path, c.key, body[c.key])
		}
		if len(arr) != 0 {
			t.Fatalf("%s: want empty array, got %v", c.path, arr)
		}
	}
}

func TestReviewAPI(t *testing.T) {
	app, db := newTestApp(t)
	seedAdmin(t, db)
	adminTok := adminLogin(t, app)
	productID := createProduct(t, app, adminTok, fiber.Map{
		"name": "Bunny Plush", "description": "A bunny",
		"price": 15, "category": "Toys", "images": []string{"x.jpg"},
		"daysToMake": 2, "shippingCost": 1,
	})
	aliceTok, _ := register(t, app, "a@x.com", "secret1", "Alice", "")
	bobTok, _ := register(t, app, "b@x.com", "secret1", "Bob", "")

	status, body := do(t, app, jsonReq("POST", "/api/reviews", fiber.Map{
		"productId": productID, "rating": 5, "comment": "lovely",
	}, aliceTok))
	if status != http.StatusCreated {
		t.Fatalf("create review: %d %v", status, body)
	}
	reviewID := body["review"].(map[string]any)["id"].(string)

	// second review on the same product is refused
	status, body = do(t, app, jsonReq("POST", "/api/reviews", fiber.Map{
		"productId": productID, "rating": 1, "comment": "again",
	}, aliceTok))
	if status != http.StatusBadRequest {
		t.Fatalf("duplicate review should be 400, got %d %v", status, body)
	}

	// rating bounds
	status, _ = do(t, app, jsonReq("POST", "/api/reviews", fiber.Map{
		"productId": productID, "rating": 6, "comment": "x",
	}, bobTok))
	if status != http.StatusBadRequest {
		t.Fatalf("rating 6 should be 400, got %d", status)
	}

	// public listing, no auth needed
	status, body = do(t, app, jsonReq("GET", "/api/reviews/product/"+productID, nil, ""))
	if status != http.StatusOK || body["count"].(float64) != 1 {
		t.Fatalf("list reviews: %d %v", status, body)
	}

	// only the author edits
	status, _ = do(t, app, jsonReq("PUT", "/api/reviews/"+reviewID, fiber.Map{
		"rating": 2, "comment": "hijack",
	}, bobTok))
	if status != http.StatusForbidden {
		t.Fatalf("foreign edit should be 403, got %d", status)
	}
	status, body = do(t, app, jsonReq("PUT", "/api/reviews/"+reviewID, fiber.Map{
		"rating": 4, "comment": "still good",
	}, aliceTok))
	if status != http.StatusOK {
		t.Fatalf("author edit: %d %v", status, body)
	}

	// admin moderation removes it
	status, _ = do(t, app, jsonReq("DELETE", "/api/reviews/"+reviewID, nil, adminTok))
	if status != http.StatusOK {
		t.Fatalf("admin delete: %d", status)
	}
	_, body = do(t, app, jsonReq("GET", "/api/reviews/product/"+productID, nil, ""))
	if body["count"].(float64) != 0 {
		t.Fatalf("review should be gone: %v", body)
	}
}
