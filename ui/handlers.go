package ui

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"

	"dasbor/app"
	"dasbor/domain/cell"
	"dasbor/domain/column"
	"dasbor/domain/sheet"
	"dasbor/internal/format"
	"dasbor/internal/profile"
)

// previewRowLimit caps how many rows the dashboard table shows per sheet
const previewRowLimit = 10

// SheetView is one sheet prepared for template rendering
type SheetView struct {
	Name        string
	Headers     []string
	Rows        [][]string
	RecordCount int
	Passthrough bool
	Profile     *profile.SheetProfile
}

// dashboardView is the root template model
type dashboardView struct {
	Source    string
	LoadedAt  string
	Sheets    []SheetView
	NotesHTML template.HTML
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleDashboard(c *gin.Context) {
	ds, err := s.service.Current(c.Request.Context())
	if err != nil {
		log.Printf("[Dashboard] Failed to load dataset: %v", err)
		c.String(http.StatusInternalServerError, "failed to load dataset")
		return
	}

	view := dashboardView{
		Source:   ds.Source,
		LoadedAt: ds.LoadedAt.Format("2006-01-02 15:04:05"),
	}

	for _, name := range ds.SheetNames {
		view.Sheets = append(view.Sheets, s.sheetView(ds, name))
	}

	if ds.Notes != "" {
		rendered := markdown.ToHTML([]byte(ds.Notes), nil, nil)
		view.NotesHTML = template.HTML(rendered)
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(c.Writer, "dashboard.html", view); err != nil {
		log.Printf("[Dashboard] Template render failed: %v", err)
	}
}

// sheetView formats one sheet's preview rows for the dashboard table
func (s *Server) sheetView(ds *app.Dataset, name string) SheetView {
	view := SheetView{Name: name}

	records, ok := ds.Sheets[name].([]sheet.Record)
	if !ok {
		view.Passthrough = true
		return view
	}

	tbl := ds.Tables[name]
	view.Headers = tbl.Headers
	view.RecordCount = len(records)

	if prof, ok := ds.Profiles[name]; ok {
		view.Profile = &prof
	}

	limit := len(records)
	if limit > previewRowLimit {
		limit = previewRowLimit
	}
	for _, rec := range records[:limit] {
		row := make([]string, 0, len(tbl.Headers))
		for _, header := range tbl.Headers {
			row = append(row, renderCell(header, rec[header]))
		}
		view.Rows = append(view.Rows, row)
	}

	return view
}

// renderCell turns one raw cell into display text. Date columns show
// their raw text, currency-named columns render as rupiah, other numeric
// cells as grouped numbers, and text passes through. Everything the
// canonicalizer rejects degrades to the placeholder.
func renderCell(header string, raw interface{}) string {
	cv := cell.Canonicalize(raw)

	if column.IsDateColumn(header) && cv.IsText() {
		return cv.AsString()
	}
	if cv.IsText() {
		return cv.AsString()
	}
	if cv.IsNumeric() {
		if isCurrencyColumn(header) {
			return format.Currency(raw)
		}
		return format.Number(raw)
	}
	return format.Placeholder
}

// isCurrencyColumn guesses money columns from their Indonesian names
func isCurrencyColumn(header string) bool {
	lower := strings.ToLower(header)
	for _, marker := range []string{"harga", "total", "target", "pendapatan", "biaya"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func (s *Server) handleSheets(c *gin.Context) {
	ds, err := s.service.Current(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dataset"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"source":      ds.Source,
		"sheet_names": ds.SheetNames,
		"sheets":      ds.Sheets,
	})
}

func (s *Server) handleSheet(c *gin.Context) {
	name := c.Param("name")
	ds, err := s.service.Current(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dataset"})
		return
	}

	raw, ok := ds.Sheets[name]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("sheet %q not found", name)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"name": name, "content": raw})
}

func (s *Server) handleSheetProfile(c *gin.Context) {
	name := c.Param("name")
	ds, err := s.service.Current(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dataset"})
		return
	}

	prof, ok := ds.Profiles[name]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("no profile for sheet %q", name)})
		return
	}

	c.JSON(http.StatusOK, prof)
}

func (s *Server) handleSnapshots(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "10")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > 100 {
		limit = 10
	}

	snapshots, err := s.service.RecentSnapshots(c.Request.Context(), limit)
	if err != nil {
		log.Printf("[API] Failed to list snapshots: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve snapshots"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"snapshots": snapshots, "count": len(snapshots)})
}

func (s *Server) handleReload(c *gin.Context) {
	ds, err := s.service.Reload(c.Request.Context())
	if err != nil {
		log.Printf("[API] Reload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"source":       ds.Source,
		"sheet_count":  len(ds.SheetNames),
		"record_count": ds.RecordCount(),
	})
}
