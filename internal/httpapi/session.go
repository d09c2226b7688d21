package httpapi

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/nguyentantai21042004/slide-narrator/internal/session"
)

func (h *Handler) GetSession(c *fiber.Ctx) error {
	if !h.Session.Active() {
		return RespondWithError(c, fiber.StatusNotFound, "No active session")
	}

	var view sessionView
	if record, ok := h.Session.Record(); ok {
		view = newSessionView(h.Session.Scripts(), &record)
	} else {
		view = newSessionView(h.Session.Scripts(), nil)
	}
	return RespondWithJSON(c, fiber.StatusOK, view)
}

func (h *Handler) ClearSession(c *fiber.Ctx) error {
	h.Session.Clear()
	return RespondWithJSON(c, fiber.StatusOK, fiber.Map{"cleared": true})
}

// ImportSession loads a run file sent either as the raw body or as the
// multipart field "file".
func (h *Handler) ImportSession(c *fiber.Ctx) error {
	var body io.Reader = bytes.NewReader(c.Body())

	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			return RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Error opening file: %v", err))
		}
		defer f.Close()
		body = f
	}

	record, err := session.Decode(body)
	if err != nil {
		return respondErr(c, err)
	}

	scripts := h.Session.LoadRecord(record)
	return RespondWithJSON(c, fiber.StatusOK, newSessionView(scripts, &record))
}

func (h *Handler) ExportPDF(c *fiber.Ctx) error {
	scripts := h.Session.Scripts()
	if len(scripts) == 0 {
		return RespondWithError(c, fiber.StatusNotFound, "No active session")
	}

	data, err := h.Exporter.PDF(scripts)
	if err != nil {
		return respondErr(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="roteiro.pdf"`)
	return c.Send(data)
}

func (h *Handler) ExportDOCX(c *fiber.Ctx) error {
	scripts := h.Session.Scripts()
	if len(scripts) == 0 {
		return RespondWithError(c, fiber.StatusNotFound, "No active session")
	}

	f, err := os.CreateTemp("", "roteiro-*.docx")
	if err != nil {
		return err
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	if err := h.Exporter.DOCX(scripts, path); err != nil {
		return respondErr(c, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="roteiro.docx"`)
	return c.Send(data)
}
