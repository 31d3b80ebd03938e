package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

// expectJSON fails unless the recorded body is JSON equal to want.
func expectJSON(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	var got, exp any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	if err := json.Unmarshal([]byte(want), &exp); err != nil {
		t.Fatalf("invalid expected json %q: %v", want, err)
	}
	if !reflect.DeepEqual(got, exp) {
		t.Fatalf("body mismatch:\n got  %s\n want %s", rec.Body.String(), want)
	}
}

func TestMenuHandler_Create_PassesRawFields(t *testing.T) {
	menu := &stubMenuService{}
	h := NewMenuHandler(menu)

	rec := httptest.NewRecorder()
	c := newEcho().NewContext(jsonRequest(http.MethodPost, "/api/menu", `{"name":"Tiramisu","price":"12.50","category":"Desserts"}`), rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	expectJSON(t, rec, `{"message":"Menu item added","id":"m1"}`)
	if menu.created["price"] != "12.50" || menu.created["name"] != "Tiramisu" {
		t.Fatalf("fields must reach the service untouched, got %v", menu.created)
	}
}

func TestMenuHandler_Update_DoesNotMergePathParams(t *testing.T) {
	menu := &stubMenuService{}
	h := NewMenuHandler(menu)

	rec := httptest.NewRecorder()
	c := newEcho().NewContext(jsonRequest(http.MethodPut, "/api/menu/abc", `{"price":9}`), rec)
	c.SetPath("/api/menu/:id")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if menu.updatedID != "abc" {
		t.Fatalf("expected id abc, got %q", menu.updatedID)
	}
	if _, ok := menu.updated["id"]; ok {
		t.Fatal("path params must not be merged into the update")
	}
	if menu.updated["price"] != float64(9) {
		t.Fatalf("unexpected price %v", menu.updated["price"])
	}
	expectJSON(t, rec, `{"message":"Menu updated"}`)
}

func TestMenuHandler_List_EmptyIsArray(t *testing.T) {
	h := NewMenuHandler(&stubMenuService{})

	rec := httptest.NewRecorder()
	c := newEcho().NewContext(httptest.NewRequest(http.MethodGet, "/api/menu", nil), rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	expectJSON(t, rec, `[]`)
}

func TestMenuHandler_Create_InvalidJSON(t *testing.T) {
	h := NewMenuHandler(&stubMenuService{})
	c := newEcho().NewContext(jsonRequest(http.MethodPost, "/api/menu", `{"name":`), httptest.NewRecorder())

	if err := h.Create(c); err == nil {
		t.Fatal("expected an error for a truncated body")
	}
}
