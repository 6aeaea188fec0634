package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"firdesk/pkg/utils"
)

// POST /api/analysis
//
// Proxies an uploaded FIR PDF to the legal-outcome analysis service and
// returns the decoded report.
func (s *Server) handlePostAnalysis(c echo.Context) error {
	if !s.Analysis.Configured() {
		return c.JSON(http.StatusServiceUnavailable, utils.ErrJSON("outcome analysis is not configured"))
	}

	header, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file upload")
	}

	file, err := header.Open()
	if err != nil {
		log.Error("cannot open uploaded FIR", "error", err)
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("cannot read upload"))
	}
	defer file.Close()

	report, err := s.Analysis.Analyze(c.Request().Context(), header.Filename, file)
	if err != nil {
		log.Error("outcome analysis failed", "error", err)
		return c.JSON(http.StatusBadGateway, utils.ErrJSON("analysis service unavailable"))
	}

	return c.JSON(http.StatusOK, report)
}
