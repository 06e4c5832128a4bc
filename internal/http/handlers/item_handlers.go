package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mworx/stockroom/internal/models"
	"github.com/mworx/stockroom/internal/repo"
	"github.com/rs/zerolog/log"
)

// CreateItemHandler godoc
// @Summary Create a new inventory item
// @Description Adds an item to the inventory and re-derives the alert set
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body ItemRequest true "Item to add"
// @Success 201 {object} ItemResponse
// @Failure 400 {array} ItemValidationError
// @Failure 409 {string} string "Duplicate product ID"
// @Router /items [post]
func CreateItemHandler(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		http.Error(w, "missing or invalid token", http.StatusUnauthorized)
		return
	}

	var req ItemRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateItem(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	created, err := svc.AddItem(actor, itemFromRequest(req))
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateProductID) {
			http.Error(w, "could not create item: product id duplicated", http.StatusConflict)
			return
		}
		http.Error(w, "could not create item", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponse(created))
}

// GetItemsHandler godoc
// @Summary List all inventory items
// @Tags items
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ItemResponse
// @Failure 500 {string} string "Internal error"
// @Router /items [get]
func GetItemsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := svc.Items()
	if err != nil {
		http.Error(w, "could not fetch items", http.StatusInternalServerError)
		return
	}
	response := make([]ItemResponse, len(items))
	for i, it := range items {
		response[i] = toItemResponse(it)
	}
	writeJSON(w, http.StatusOK, response)
}

// GetItemByIDHandler godoc
// @Summary Get inventory item by ID
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} ItemResponse
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /items/{id} [get]
func GetItemByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := svc.Item(id)
	if err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch item", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// UpdateItemHandler godoc
// @Summary Update an inventory item
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param item body ItemRequest true "Updated item"
// @Success 200 {object} ItemResponse
// @Failure 400 {array} ItemValidationError
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /items/{id} [put]
func UpdateItemHandler(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		http.Error(w, "missing or invalid token", http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")

	var req ItemRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateItem(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	item := itemFromRequest(req)
	item.ID = id
	updated, err := svc.UpdateItem(actor, item)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrItemNotFound):
			http.Error(w, "item not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrDuplicateProductID):
			http.Error(w, "could not update item: product id duplicated", http.StatusConflict)
		default:
			http.Error(w, "could not update item", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(updated))
}

// DeleteItemHandler godoc
// @Summary Delete an inventory item
// @Tags items
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /items/{id} [delete]
func DeleteItemHandler(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		http.Error(w, "missing or invalid token", http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")
	if err := svc.DeleteItem(actor, id); err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete item", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseIntPtr(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// FilterItemsHandler godoc
// @Summary Filter and paginate inventory items
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param name query string false "Filter by name"
// @Param category query string false "Filter by category"
// @Param minQty query int false "Minimum quantity"
// @Param maxQty query int false "Maximum quantity"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} ItemsSearchResult
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /items/search [get]
func FilterItemsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := repo.ItemFilter{
		Name:     q.Get("name"),
		Category: q.Get("category"),
		MinQty:   parseIntPtr(q.Get("minQty")),
		MaxQty:   parseIntPtr(q.Get("maxQty")),
		Offset:   parseIntPtr(q.Get("offset")),
		Limit:    parseIntPtr(q.Get("limit")),
	}

	if filter.Limit != nil && *filter.Limit <= 0 {
		http.Error(w, "limit must be greater than zero", http.StatusBadRequest)
		return
	}
	if filter.Offset != nil && *filter.Offset < 0 {
		http.Error(w, "offset must be zero or positive", http.StatusBadRequest)
		return
	}

	items, total, err := svc.Search(filter)
	if err != nil {
		http.Error(w, "could not filter items", http.StatusInternalServerError)
		return
	}

	resp := ItemsSearchResult{
		Data: make([]ItemResponse, len(items)),
		Meta: Meta{TotalCount: total},
	}
	for i, it := range items {
		resp.Data[i] = toItemResponse(it)
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func itemFromRequest(req ItemRequest) models.InventoryItem {
	return models.InventoryItem{
		ProductID:    req.ProductID,
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     req.Quantity,
		UnitPrice:    req.UnitPrice,
		ReorderPoint: req.ReorderPoint,
		Supplier:     req.Supplier,
		Description:  req.Description,
		Location:     req.Location,
		Barcode:      req.Barcode,
	}
}
