package database

import (
	"context"
	"errors"
	"testing"
)

func TestAddItemStartsUnchecked(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	list, err := store.AddList(ctx, "Groceries")
	if err != nil {
		t.Fatalf("Failed to add list: %v", err)
	}

	item, err := store.AddItem(ctx, list.ID, "Milk")
	if err != nil {
		t.Fatalf("Failed to add item: %v", err)
	}
	if item.Checked {
		t.Error("New item should start unchecked")
	}
	if item.ListID != list.ID {
		t.Errorf("Item should belong to list %d, got %d", list.ID, item.ListID)
	}

	items, err := store.FetchItems(ctx, list.ID)
	if err != nil {
		t.Fatalf("Failed to fetch items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}
	if items[0].Text != "Milk" || items[0].Checked {
		t.Errorf("Expected unchecked Milk, got %+v", items[0])
	}
}

func TestAddItemDanglingListRejected(t *testing.T) {
	store := setupTestStore(t)

	// Foreign key enforcement is on for the session, so a dangling
	// reference must fail as a constraint violation
	_, err := store.AddItem(context.Background(), 42, "Milk")
	if err == nil {
		t.Fatal("Expected constraint error for dangling list id")
	}
	if !errors.Is(err, ErrConstraint) {
		t.Errorf("Expected ErrConstraint, got %v", err)
	}
}

func TestFetchItemsInsertionOrder(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	list, err := store.AddList(ctx, "Groceries")
	if err != nil {
		t.Fatalf("Failed to add list: %v", err)
	}

	texts := []string{"Milk", "Eggs", "Bread", "Butter"}
	for _, text := range texts {
		if _, err := store.AddItem(ctx, list.ID, text); err != nil {
			t.Fatalf("Failed to add item %q: %v", text, err)
		}
	}

	items, err := store.FetchItems(ctx, list.ID)
	if err != nil {
		t.Fatalf("Failed to fetch items: %v", err)
	}
	if len(items) != len(texts) {
		t.Fatalf("Expected %d items, got %d", len(texts), len(items))
	}
	for i, text := range texts {
		if items[i].Text != text {
			t.Errorf("Item %d should be %q, got %q", i, text, items[i].Text)
		}
		if items[i].Checked {
			t.Errorf("Item %q should start unchecked", text)
		}
	}
}

func TestFetchItemsUnknownListEmpty(t *testing.T) {
	store := setupTestStore(t)

	items, err := store.FetchItems(context.Background(), 123)
	if err != nil {
		t.Fatalf("Failed to fetch items: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected empty result for unknown list, got %d items", len(items))
	}
}

func TestUpdateItemToggle(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	list, err := store.AddList(ctx, "Groceries")
	if err != nil {
		t.Fatalf("Failed to add list: %v", err)
	}
	item, err := store.AddItem(ctx, list.ID, "Milk")
	if err != nil {
		t.Fatalf("Failed to add item: %v", err)
	}

	if err := store.UpdateItem(ctx, item.ID, true); err != nil {
		t.Fatalf("Failed to check item: %v", err)
	}

	items, err := store.FetchItems(ctx, list.ID)
	if err != nil {
		t.Fatalf("Failed to fetch items: %v", err)
	}
	if !items[0].Checked {
		t.Error("Item should be checked")
	}

	// Revert
	if err := store.UpdateItem(ctx, item.ID, false); err != nil {
		t.Fatalf("Failed to uncheck item: %v", err)
	}
	items, err = store.FetchItems(ctx, list.ID)
	if err != nil {
		t.Fatalf("Failed to fetch items: %v", err)
	}
	if items[0].Checked {
		t.Error("Item should be unchecked again")
	}
}

func TestUpdateItemIdempotent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	list, err := store.AddList(ctx, "Groceries")
	if err != nil {
		t.Fatalf("Failed to add list: %v", err)
	}
	item, err := store.AddItem(ctx, list.ID, "Milk")
	if err != nil {
		t.Fatalf("Failed to add item: %v", err)
	}

	// Repeated identical calls leave the same state behind
	for range 3 {
		if err := store.UpdateItem(ctx, item.ID, true); err != nil {
			t.Fatalf("Failed to check item: %v", err)
		}
	}

	items, err := store.FetchItems(ctx, list.ID)
	if err != nil {
		t.Fatalf("Failed to fetch items: %v", err)
	}
	if len(items) != 1 || !items[0].Checked {
		t.Errorf("Expected single checked item, got %+v", items)
	}
}

func TestUpdateItemNonexistentIsNoop(t *testing.T) {
	store := setupTestStore(t)

	if err := store.UpdateItem(context.Background(), 9999, true); err != nil {
		t.Errorf("Updating nonexistent item should be a no-op, got %v", err)
	}
}

func TestDeleteItem(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	list, err := store.AddList(ctx, "Groceries")
	if err != nil {
		t.Fatalf("Failed to add list: %v", err)
	}
	milk, err := store.AddItem(ctx, list.ID, "Milk")
	if err != nil {
		t.Fatalf("Failed to add item: %v", err)
	}
	eggs, err := store.AddItem(ctx, list.ID, "Eggs")
	if err != nil {
		t.Fatalf("Failed to add item: %v", err)
	}

	if err := store.DeleteItem(ctx, milk.ID); err != nil {
		t.Fatalf("Failed to delete item: %v", err)
	}

	items, err := store.FetchItems(ctx, list.ID)
	if err != nil {
		t.Fatalf("Failed to fetch items: %v", err)
	}
	if len(items) != 1 || items[0].ID != eggs.ID {
		t.Errorf("Expected only Eggs to remain, got %+v", items)
	}
}

func TestDeleteItemNonexistentLeavesRowsUnchanged(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	list, err := store.AddList(ctx, "Groceries")
	if err != nil {
		t.Fatalf("Failed to add list: %v", err)
	}
	if _, err := store.AddItem(ctx, list.ID, "Milk"); err != nil {
		t.Fatalf("Failed to add item: %v", err)
	}

	if err := store.DeleteItem(ctx, 9999); err != nil {
		t.Errorf("Deleting nonexistent item should be a no-op, got %v", err)
	}

	items, err := store.FetchItems(ctx, list.ID)
	if err != nil {
		t.Fatalf("Failed to fetch items: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("Expected 1 item, got %d", len(items))
	}
}
