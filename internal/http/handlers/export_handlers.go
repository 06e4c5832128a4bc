package handlers

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"strconv"
)

// ExportItemsHandler godoc
// @Summary Export the inventory snapshot
// @Tags items
// @Produce text/csv, application/json
// @Security BearerAuth
// @Param format query string true "Export format (csv or json)"
// @Success 200 {file} file
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /items/export [get]
func ExportItemsHandler(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		http.Error(w, "missing or invalid token", http.StatusUnauthorized)
		return
	}

	format := r.URL.Query().Get("format")
	if format != "csv" && format != "json" {
		http.Error(w, "format must be 'csv' or 'json'", http.StatusBadRequest)
		return
	}

	items, err := svc.Items()
	if err != nil {
		http.Error(w, "could not fetch items", http.StatusInternalServerError)
		return
	}

	svc.RecordExport(actor, format, len(items))

	switch format {
	case "json":
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="inventory.json"`)
		json.NewEncoder(w).Encode(items)

	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="inventory.csv"`)

		csvWriter := csv.NewWriter(w)
		_ = csvWriter.Write([]string{"id", "product_id", "name", "category", "quantity",
			"unit_price", "reorder_point", "supplier", "location", "barcode"})
		for _, it := range items {
			_ = csvWriter.Write([]string{
				it.ID,
				it.ProductID,
				it.Name,
				it.Category,
				strconv.Itoa(it.Quantity),
				strconv.FormatFloat(it.UnitPrice, 'f', 2, 64),
				strconv.Itoa(it.ReorderPoint),
				it.Supplier,
				it.Location,
				it.Barcode,
			})
		}
		csvWriter.Flush()
	}
}
