package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestSettingsLazyDefaultsAndUpdate(t *testing.T) {
	app, db := newTestApp(t)
	seedAdmin(t, db)

	// first read materializes the defaults
	status, body := do(t, app, jsonReq("GET", "/api/settings", nil, ""))
	if status != http.StatusOK {
		t.Fatalf("get settings: %d %v", status, body)
	}
	s := body["settings"].(map[string]any)
	if s["storeName"] != "Bubbly Crochet" || s["contactEmail"] != "contact@bubblycrochet.com" {
		t.Fatalf("unexpected defaults: %v", s)
	}

	adminTok := adminLogin(t, app)
	status, body = do(t, app, jsonReq("PUT", "/api/settings", fiber.Map{
		"storeName": "Bubbly Crochet Co", "ownerName": "Maya",
		"contactEmail": "hello@bubblycrochet.com", "contactPhone": "+1 (555) 111-2222",
	}, adminTok))
	if status != http.StatusOK {
		t.Fatalf("update settings: %d %v", status, body)
	}

	_, body = do(t, app, jsonReq("GET", "/api/settings", nil, ""))
	s = body["settings"].(map[string]any)
	if s["storeName"] != "Bubbly Crochet Co" || s["ownerName"] != "Maya" {
		t.Fatalf("update not persisted: %v", s)
	}

	// required fields
	status, _ = do(t, app, jsonReq("PUT", "/api/settings", fiber.Map{
		"ownerName": "Maya", "contactEmail": "hello@bubblycrochet.com",
	}, adminTok))
	if status != http.StatusBadRequest {
		t.Fatalf("missing store name should be 400, got %d", status)
	}
	status, _ = do(t, app, jsonReq("PUT", "/api/settings", fiber.Map{
		"storeName": "X", "ownerName": "Maya", "contactEmail": "nope",
	}, adminTok))
	if status != http.StatusBadRequest {
		t.Fatalf("bad contact email should be 400, got %d", status)
	}
}

func journeyPayload(title, category string) fiber.Map {
	return fiber.Map{
		"title": title, "description": "a " + category + " link",
		"url": "https://example.com/" + title, "thumbnailUrl": "https://example.com/t.jpg",
		"category": category,
	}
}

func TestJourneyGroupedCaching(t *testing.T) {
	app, db := newTestApp(t)
	seedAdmin(t, db)
	adminTok := adminLogin(t, app)

	status, body := do(t, app, jsonReq("POST", "/api/journey", journeyPayload("granny", "styles"), adminTok))
	if status != http.StatusCreated {
		t.Fatalf("create journey: %d %v", status, body)
	}
	resourceID := body["data"].(map[string]any)["id"].(string)

	// cold read, then a warm one
	status, body = do(t, app, jsonReq("GET", "/api/journey/grouped", nil, ""))
	if status != http.StatusOK || body["cached"] != false {
		t.Fatalf("first grouped read should miss: %d %v", status, body)
	}
	data := body["data"].(map[string]any)
	for _, cat := range []string{"styles", "tools", "resources", "stores"} {
		if _, okC := data[cat]; !okC {
			t.Fatalf("missing bucket %s: %v", cat, data)
		}
	}
	if len(data["styles"].([]any)) != 1 {
		t.Fatalf("styles bucket: %v", data["styles"])
	}

	_, body = do(t, app, jsonReq("GET", "/api/journey/grouped", nil, ""))
	if body["cached"] != true {
		t.Fatalf("second grouped read should hit: %v", body)
	}

	// an admin write invalidates the snapshot
	status, _ = do(t, app, jsonReq("PUT", "/api/journey/"+resourceID, journeyPayload("granny-v2", "styles"), adminTok))
	if status != http.StatusOK {
		t.Fatalf("update journey: %d", status)
	}
	_, body = do(t, app, jsonReq("GET", "/api/journey/grouped", nil, ""))
	if body["cached"] != false {
		t.Fatalf("grouped read after write should miss: %v", body)
	}

	status, _ = do(t, app, jsonReq("DELETE", "/api/journey/"+resourceID, nil, adminTok))
	if status != http.StatusOK {
		t.Fatalf("delete journey: %d", status)
	}
	status, _ = do(t, app, jsonReq("GET", "/api/journey/"+resourceID, nil, ""))
	if status != http.StatusNotFound {
		t.Fatalf("deleted resource should be 404, got %d", status)
	}
}

func TestJourneyListFilter(t *testing.T) {
	app, db := newTestApp(t)
	seedAdmin(t, db)
	adminTok := adminLogin(t, app)

	for _, cat := range []string{"styles", "tools", "tools"} {
		status, _ := do(t, app, jsonReq("POST", "/api/journey", journeyPayload("r-"+cat, cat), adminTok))
		if status != http.StatusCreated {
			t.Fatalf("create %s: %d", cat, status)
		}
	}

	status, body := do(t, app, jsonReq("GET", "/api/journey?category=tools", nil, ""))
	if status != http.StatusOK || body["count"].(float64) != 2 {
		t.Fatalf("filtered list: %d %v", status, body)
	}
	status, body = do(t, app, jsonReq("GET", "/api/journey", nil, ""))
	if status != http.StatusOK || body["count"].(float64) != 3 {
		t.Fatalf("full list: %d %v", status, body)
	}
	status, _ = do(t, app, jsonReq("GET", "/api/journey?category=nope", nil, ""))
	if status != http.StatusBadRequest {
		t.Fatalf("unknown category should be 400, got %d", status)
	}
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t)
	status, body := do(t, app, jsonReq("GET", "/api/health", nil, ""))
	if status != http.StatusOK || body["success"] != true {
		t.Fatalf("health: %d %v", status, body)
	}
}
