package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"main/model"
	"main/test/testutils"
)

func TestAddTodoHandler(t *testing.T) {
	store := testutils.NewMemGoalStore()
	router, svc := setupGoalRouter(store, "test-user")

	goal, err := svc.CreateGoal(context.Background(), "test-user", "Learn Go", nil)
	if err != nil {
		t.Fatalf("seed goal failed: %v", err)
	}

	t.Run("Created", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/goals/"+goal.ID+"/todos", `{"text":"read the tour"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if resp["text"] != "read the tour" {
			t.Errorf("unexpected todo text %v", resp["text"])
		}
		if resp["id"] == "" || resp["id"] == nil {
			t.Error("expected a todo ID in the response")
		}
		if resp["completed"] != false {
			t.Errorf("expected completed=false, got %v", resp["completed"])
		}
	})

	t.Run("MissingText", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/goals/"+goal.ID+"/todos", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("MissingGoal", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/goals/no-such-goal/todos", `{"text":"orphan"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestUpdateTodoHandler(t *testing.T) {
	store := testutils.NewMemGoalStore()
	router, svc := setupGoalRouter(store, "test-user")

	goal, err := svc.CreateGoal(context.Background(), "test-user", "Learn Go", []model.Todo{{Text: "old text"}})
	if err != nil {
		t.Fatalf("seed goal failed: %v", err)
	}
	todoID := goal.Todos[0].ID

	w := doJSON(t, router, http.MethodPut, "/goals/"+goal.ID+"/todos/"+todoID, `{"text":"new text"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp["success"] != true {
		t.Errorf("expected {\"success\":true}, got %v", resp)
	}

	updated, err := store.GetGoalByID(context.Background(), goal.ID)
	if err != nil {
		t.Fatalf("fetch after update failed: %v", err)
	}
	if updated.Todos[0].Text != "new text" {
		t.Errorf("todo text not persisted, got %q", updated.Todos[0].Text)
	}

	// An unknown todo ID still reports success, the goal is untouched.
	w = doJSON(t, router, http.MethodPut, "/goals/"+goal.ID+"/todos/no-such-todo", `{"text":"ghost"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for unmatched todo, got %d", w.Code)
	}
}

func TestUpdateTodoCompletionHandler(t *testing.T) {
	store := testutils.NewMemGoalStore()
	router, svc := setupGoalRouter(store, "test-user")

	goal, err := svc.CreateGoal(context.Background(), "test-user", "Learn Go", []model.Todo{{Text: "finish chapter"}})
	if err != nil {
		t.Fatalf("seed goal failed: %v", err)
	}
	todoID := goal.Todos[0].ID

	w := doJSON(t, router, http.MethodPut, "/goals/"+goal.ID+"/todos/"+todoID+"/completion", `{"completed":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp["id"] != todoID {
		t.Errorf("expected id %q in response, got %v", todoID, resp["id"])
	}
	if resp["completed"] != true {
		t.Errorf("expected completed=true, got %v", resp["completed"])
	}

	t.Run("MissingFlagRejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, "/goals/"+goal.ID+"/todos/"+todoID+"/completion", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("ForeignGoalForbidden", func(t *testing.T) {
		foreign, err := svc.CreateGoal(context.Background(), "other-user", "Theirs", []model.Todo{{Text: "secret"}})
		if err != nil {
			t.Fatalf("seed goal failed: %v", err)
		}
		w := doJSON(t, router, http.MethodPut, "/goals/"+foreign.ID+"/todos/"+foreign.Todos[0].ID+"/completion", `{"completed":true}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestDeleteTodoHandler(t *testing.T) {
	store := testutils.NewMemGoalStore()
	router, svc := setupGoalRouter(store, "test-user")

	goal, err := svc.CreateGoal(context.Background(), "test-user", "Learn Go", []model.Todo{{Text: "drop me"}})
	if err != nil {
		t.Fatalf("seed goal failed: %v", err)
	}
	todoID := goal.Todos[0].ID

	w := doJSON(t, router, http.MethodDelete, "/goals/"+goal.ID+"/todos/"+todoID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp["success"] != true {
		t.Errorf("expected {\"success\":true}, got %v", resp)
	}

	updated, err := store.GetGoalByID(context.Background(), goal.ID)
	if err != nil {
		t.Fatalf("fetch after delete failed: %v", err)
	}
	if len(updated.Todos) != 0 {
		t.Errorf("expected todo removed, got %v", updated.Todos)
	}

	// Deleting again is a silent no-op.
	w = doJSON(t, router, http.MethodDelete, "/goals/"+goal.ID+"/todos/"+todoID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for repeat delete, got %d", w.Code)
	}
}
