package httpapi

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/nguyentantai21042004/slide-narrator/internal/pipeline"
	"github.com/nguyentantai21042004/slide-narrator/internal/session"
)

var validate = validator.New()

type createRunForm struct {
	Start   int `form:"start" validate:"required,min=1"`
	End     int `form:"end" validate:"required,gtefield=Start"`
	Minutes int `form:"minutes" validate:"required,min=1,max=10000"`
}

type dateQuery struct {
	Year  int `query:"year" validate:"omitempty,min=1000,max=9999"`
	Month int `query:"month" validate:"omitempty,min=1,max=12"`
	Day   int `query:"day" validate:"omitempty,min=1,max=31"`
}

// CreateRun uploads a deck and runs generation synchronously. The finished
// run becomes the active session.
func (h *Handler) CreateRun(c *fiber.Ctx) error {
	var form createRunForm
	if err := c.BodyParser(&form); err != nil {
		return RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Invalid form: %v", err))
	}
	if err := validate.Struct(form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Validation failed",
			"errors":  pipeline.ValidationMessages(err),
		})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Error getting file: %v", err))
	}
	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		return RespondWithError(c, fiber.StatusBadRequest, "Only .pdf files are accepted")
	}

	f, err := file.Open()
	if err != nil {
		return RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Error opening file: %v", err))
	}
	defer f.Close()

	ctx := c.UserContext()
	h.Logger.Info(ctx, "Received deck %s (%d bytes)", file.Filename, file.Size)

	res, err := h.Pipeline.Generate(ctx, pipeline.Request{
		Reader:     f,
		Size:       file.Size,
		SourceName: filepath.Base(file.Filename),
		Start:      form.Start,
		End:        form.End,
		Minutes:    form.Minutes,
	})
	if err != nil {
		h.Logger.Error(ctx, "Generation failed for %s: %v", file.Filename, err)
		return respondErr(c, err)
	}

	h.Session.Replace(res.Scripts, res.Record)

	view := newSessionView(res.Scripts, res.Record)
	view.RunID = res.RunID
	view.File = filepath.Base(res.RecordPath)
	return RespondWithJSON(c, fiber.StatusCreated, view)
}

// ListRuns lists saved run files, newest first, optionally filtered by date.
func (h *Handler) ListRuns(c *fiber.Ctx) error {
	var q dateQuery
	if err := c.QueryParser(&q); err != nil {
		return RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Invalid query: %v", err))
	}
	if err := validate.Struct(q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Validation failed",
			"errors":  pipeline.ValidationMessages(err),
		})
	}

	names, err := h.Store.List()
	if err != nil {
		return respondErr(c, err)
	}

	names = session.FilterByDate(names, q.Year, q.Month, q.Day)
	if names == nil {
		names = []string{}
	}
	return RespondWithJSON(c, fiber.StatusOK, fiber.Map{"runs": names})
}

func (h *Handler) ListYears(c *fiber.Ctx) error {
	names, err := h.Store.List()
	if err != nil {
		return respondErr(c, err)
	}

	years := session.Years(names)
	if years == nil {
		years = []int{}
	}
	return RespondWithJSON(c, fiber.StatusOK, fiber.Map{"years": years})
}

// LoadRun makes a saved run the active session. A failed load leaves the
// session untouched.
func (h *Handler) LoadRun(c *fiber.Ctx) error {
	record, err := h.Store.Open(c.Params("name"))
	if err != nil {
		return respondErr(c, err)
	}

	scripts := h.Session.LoadRecord(record)
	view := newSessionView(scripts, &record)
	view.File = c.Params("name")
	return RespondWithJSON(c, fiber.StatusOK, view)
}

type pendingRun struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	StartPage int       `json:"start_page"`
	EndPage   int       `json:"end_page"`
	Written   int       `json:"slides_written"`
	Total     int       `json:"slides_total"`
	CreatedAt time.Time `json:"created_at"`
}

// ListPending lists runs that stopped before saving and can be resumed.
func (h *Handler) ListPending(c *fiber.Ctx) error {
	runs, err := h.Checkpoints.List()
	if err != nil {
		return respondErr(c, err)
	}

	pending := make([]pendingRun, 0, len(runs))
	for _, r := range runs {
		pending = append(pending, pendingRun{
			ID:        r.ID,
			Source:    r.Meta.SourceName,
			StartPage: r.Meta.StartPage,
			EndPage:   r.Meta.EndPage,
			Written:   len(r.Scripts),
			Total:     len(r.Pages),
			CreatedAt: r.CreatedAt,
		})
	}
	return RespondWithJSON(c, fiber.StatusOK, fiber.Map{"runs": pending})
}

// ResumeRun finishes an interrupted run; the result becomes the active session.
func (h *Handler) ResumeRun(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")

	res, err := h.Pipeline.Resume(ctx, id)
	if err != nil {
		h.Logger.Error(ctx, "Resume failed for %s: %v", id, err)
		return respondErr(c, err)
	}

	h.Session.Replace(res.Scripts, res.Record)

	view := newSessionView(res.Scripts, res.Record)
	view.RunID = res.RunID
	view.File = filepath.Base(res.RecordPath)
	return RespondWithJSON(c, fiber.StatusOK, view)
}
