package server

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/dashboard"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/output"
	"go.uber.org/zap"
)

// TableResponse is the body of GET /api/table.
type TableResponse struct {
	Source  string             `json:"source,omitempty"`
	Sheet   string             `json:"sheet,omitempty"`
	Filter  dashboard.Filter   `json:"filter"`
	Columns []string           `json:"columns"`
	Rows    []models.MetricRow `json:"rows"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"status": "ok",
		"rows":   len(s.table.Rows),
	})
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	filter := filterFromRequest(r)
	s.writeJSON(w, r, TableResponse{
		Source:  s.table.Source,
		Sheet:   s.table.Sheet,
		Filter:  filter,
		Columns: s.table.Columns,
		Rows:    filter.Apply(s.table.Rows),
	})
}

func (s *Server) handleRegions(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, dashboard.Regions(s.table.Rows))
}

func (s *Server) handleMonths(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, dashboard.MonthOrder(s.table.Rows))
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, dashboard.Options(s.table.Rows))
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, s.summary(filterFromRequest(r)))
}

// writeJSON renders v through the output package so metric values stay JSON numbers.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, v interface{}) {
	data, err := output.Marshal(v, false)
	if err != nil {
		s.logger.Error("encode response", zap.String("path", r.URL.Path), zap.Error(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, map[string]interface{}{"error": "encode response"})
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	render.Data(w, r, data)
}

// filterFromRequest reads repeated region and month query parameters.
func filterFromRequest(r *http.Request) dashboard.Filter {
	q := r.URL.Query()
	return dashboard.Filter{
		Regions: q["region"],
		Months:  q["month"],
	}
}
