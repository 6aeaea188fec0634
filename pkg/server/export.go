package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"firdesk/pkg/export"
	"firdesk/pkg/schema"
	"firdesk/pkg/utils"
)

// GET /api/session/:id/export/:format
//
// Renders the session's filed record as txt, doc or pdf. The response is
// an attachment by default; ?print=1 serves it inline so the browser's
// print dialog can take over.
func (s *Server) handleGetExport(c echo.Context) error {
	sess, ok := s.session(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown session")
	}

	record, filed := sess.Record()
	if !filed {
		return c.JSON(http.StatusConflict, utils.ErrJSON("no FIR filed in this session yet"))
	}

	format := c.Param("format")
	data, contentType, err := render(record, format)
	if errors.Is(err, export.ErrRenderFailed) {
		log.Error("export render failed", "format", format, "error", err)
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("render failed"))
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(data) == 0 {
		log.Error("export rendered no output", "format", format, "fir", record.FIRNumber)
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON("render failed"))
	}

	disposition := "attachment"
	if c.QueryParam("print") == "1" {
		disposition = "inline"
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`%s; filename=%q`, disposition, export.Filename(record, format)))

	log.Info("FIR exported", "fir", record.FIRNumber, "format", format, "bytes", len(data))
	return c.Blob(http.StatusOK, contentType, data)
}

func render(record schema.Record, format string) ([]byte, string, error) {
	switch format {
	case "txt":
		return export.Text(record), "text/plain; charset=utf-8", nil
	case "doc":
		return export.Word(record), "application/msword", nil
	case "pdf":
		data, err := export.PDF(record)
		if err != nil {
			return nil, "", err
		}
		return data, "application/pdf", nil
	default:
		return nil, "", fmt.Errorf("unsupported export format %q", format)
	}
}
