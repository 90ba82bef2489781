package task

import (
	"encoding/json"
	"errors"
	"testing"

	domain "github.com/example/taskboard/domain/task"
)

func TestNullableStringTriState(t *testing.T) {
	t.Run("absent key", func(t *testing.T) {
		var req UpdateTaskRequest
		if err := json.Unmarshal([]byte(`{"title":"x"}`), &req); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if req.ProjectID.Set {
			t.Error("ProjectID.Set = true for absent key, want false")
		}
	})

	t.Run("explicit null", func(t *testing.T) {
		var req UpdateTaskRequest
		if err := json.Unmarshal([]byte(`{"project_id":null}`), &req); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if !req.ProjectID.Set || req.ProjectID.Value != nil {
			t.Errorf("ProjectID = %+v, want Set with nil value", req.ProjectID)
		}
		if !req.HasChanges() {
			t.Error("HasChanges() = false, explicit null is a change")
		}
	})

	t.Run("string value", func(t *testing.T) {
		var req UpdateTaskRequest
		if err := json.Unmarshal([]byte(`{"project_id":"p-1"}`), &req); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if !req.ProjectID.Set || req.ProjectID.Value == nil || *req.ProjectID.Value != "p-1" {
			t.Errorf("ProjectID = %+v, want Set with value p-1", req.ProjectID)
		}
	})

	t.Run("absent key survives a round trip", func(t *testing.T) {
		// The request crosses a marshal/unmarshal hop between the HTTP
		// surface and the service container; that hop must not turn an
		// absent key into an explicit null.
		var req UpdateTaskRequest
		if err := json.Unmarshal([]byte(`{"title":"x"}`), &req); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		raw, err := json.Marshal(req)
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		var again UpdateTaskRequest
		if err := json.Unmarshal(raw, &again); err != nil {
			t.Fatalf("Unmarshal() round trip error = %v", err)
		}
		if again.ProjectID.Set {
			t.Errorf("round trip re-encoded absent project_id as %s", raw)
		}
	})
}

func TestHasChanges(t *testing.T) {
	if (UpdateTaskRequest{}).HasChanges() {
		t.Error("HasChanges() = true for empty request")
	}
	if (UpdateTaskRequest{OwnerID: "alice"}).HasChanges() {
		t.Error("HasChanges() = true for scoping-only request")
	}
	title := "x"
	if !(UpdateTaskRequest{Title: &title}).HasChanges() {
		t.Error("HasChanges() = false with a supplied field")
	}
}

func TestBuildListFilter(t *testing.T) {
	t.Run("status defaults to open", func(t *testing.T) {
		filter, err := BuildListFilter(ListTasksRequest{})
		if err != nil {
			t.Fatalf("BuildListFilter() error = %v", err)
		}
		if filter.Status != domain.StatusOpen || filter.AllStatuses {
			t.Errorf("filter = %+v, want open-only default", filter)
		}
	})

	t.Run("all sentinel", func(t *testing.T) {
		filter, err := BuildListFilter(ListTasksRequest{Status: "All"})
		if err != nil {
			t.Fatalf("BuildListFilter() error = %v", err)
		}
		if !filter.AllStatuses {
			t.Error("AllStatuses = false for All sentinel")
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		if _, err := BuildListFilter(ListTasksRequest{Status: "Archived"}); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("BuildListFilter() error = %v, want ErrValidation", err)
		}
	})

	t.Run("date bounds", func(t *testing.T) {
		from, to := "2024-03-01", "2024-03-31"
		filter, err := BuildListFilter(ListTasksRequest{From: &from, To: &to})
		if err != nil {
			t.Fatalf("BuildListFilter() error = %v", err)
		}
		if filter.From == nil || filter.To == nil {
			t.Fatal("date bounds missing from filter")
		}
		if filter.From.Day() != 1 || filter.To.Day() != 31 {
			t.Errorf("bounds = %v..%v", filter.From, filter.To)
		}
	})

	t.Run("malformed bound", func(t *testing.T) {
		bad := "March 1st"
		if _, err := BuildListFilter(ListTasksRequest{From: &bad}); !errors.Is(err, domain.ErrInvalidDate) {
			t.Errorf("BuildListFilter() error = %v, want ErrInvalidDate", err)
		}
	})
}
