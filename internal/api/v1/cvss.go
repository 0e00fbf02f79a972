package v1

import (
	"log/slog"
	"strconv"
	"strings"

	"cvss-scoring-service-golang/internal/cvss"
	"cvss-scoring-service-golang/internal/schemas"
	"cvss-scoring-service-golang/internal/services"
	"cvss-scoring-service-golang/utils"

	"github.com/friendsofgo/errors"
	fiber "github.com/gofiber/fiber/v2"
	"github.com/kat-co/vala"
)

const apiSource = "api"

type cvssHandler struct {
	scorer *services.Scorer
}

func RegisterCVSSRoutes(r fiber.Router, scorer *services.Scorer) {
	h := &cvssHandler{scorer: scorer}

	r.Get("/health", health)
	r.Post("/calculate/vector", h.calculateVector)
	r.Post("/calculate/metrics", h.calculateMetrics)
	r.Post("/xml/vector", h.xmlVector)
	r.Post("/xml/metrics", h.xmlMetrics)
	r.Post("/json/vector", h.jsonVector)
	r.Get("/severity", severity)
	r.Post("/evaluate", h.evaluate)
	r.Get("/stream", utils.StreamScores)
}

// @Summary Health check
// @Tags cvss
// @Produce json
// @Success 200 {object} schemas.HealthResponse
// @Router /health [get]
func health(c *fiber.Ctx) error {
	return c.JSON(schemas.HealthResponse{Status: "ok", Service: "cvss-scoring-service"})
}

// @Summary Score a vector string
// @Description Computes base, temporal and environmental scores of a CVSS v3.1 vector
// @Tags cvss
// @Accept json
// @Produce json
// @Param X-CVSS-Profile header string false "Environment profile"
// @Param request body schemas.VectorRequest true "Vector"
// @Success 200 {object} cvss.Result
// @Failure 400 {object} map[string]interface{}
// @Failure 422 {object} schemas.ErrorResponse
// @Router /calculate/vector [post]
func (h *cvssHandler) calculateVector(c *fiber.Ctx) error {
	res, err := h.scoreVectorRequest(c)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// @Summary Score a metric set
// @Tags cvss
// @Accept json
// @Produce json
// @Param X-CVSS-Profile header string false "Environment profile"
// @Param request body schemas.MetricsRequest true "Metrics keyed by abbreviation"
// @Success 200 {object} cvss.Result
// @Failure 400 {object} map[string]interface{} "Invalid body, profile or a metric given twice"
// @Failure 422 {object} schemas.ErrorResponse
// @Router /calculate/metrics [post]
func (h *cvssHandler) calculateMetrics(c *fiber.Ctx) error {
	res, err := h.scoreMetricsRequest(c)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// @Summary Render a vector as CVSS v3.1 XML
// @Tags cvss
// @Accept json
// @Produce xml
// @Param request body schemas.VectorRequest true "Vector"
// @Success 200 {string} string
// @Failure 422 {object} schemas.ErrorResponse
// @Router /xml/vector [post]
func (h *cvssHandler) xmlVector(c *fiber.Ctx) error {
	res, err := h.scoreVectorRequest(c)
	if err != nil {
		return respondError(c, err)
	}
	return sendXML(c, res)
}

// @Summary Render a metric set as CVSS v3.1 XML
// @Tags cvss
// @Accept json
// @Produce xml
// @Param request body schemas.MetricsRequest true "Metrics keyed by abbreviation"
// @Success 200 {string} string
// @Failure 400 {object} map[string]interface{}
// @Failure 422 {object} schemas.ErrorResponse
// @Router /xml/metrics [post]
func (h *cvssHandler) xmlMetrics(c *fiber.Ctx) error {
	res, err := h.scoreMetricsRequest(c)
	if err != nil {
		return respondError(c, err)
	}
	return sendXML(c, res)
}

// @Summary Render a vector as CVSS JSON 3.1
// @Tags cvss
// @Accept json
// @Produce json
// @Param request body schemas.VectorRequest true "Vector"
// @Success 200 {object} cvss.JSONDocument
// @Failure 422 {object} schemas.ErrorResponse
// @Router /json/vector [post]
func (h *cvssHandler) jsonVector(c *fiber.Ctx) error {
	res, err := h.scoreVectorRequest(c)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res.JSON())
}

// @Summary Severity of a score
// @Tags cvss
// @Produce json
// @Param score query number true "Score between 0 and 10"
// @Success 200 {object} schemas.SeverityResponse
// @Failure 400 {object} map[string]interface{}
// @Router /severity [get]
func severity(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("score"))
	score, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "score must be a number")
	}
	rating := cvss.SeverityRating(score)
	if rating == "" {
		return fiber.NewError(fiber.StatusBadRequest, "score must be between 0 and 10")
	}
	return c.JSON(schemas.SeverityResponse{Score: score, Severity: rating})
}

// @Summary Evaluate a vector or a bare score
// @Description Scores a CVSS v3.1 vector, or rates a numeric score, as analysts enter both into the same field
// @Tags cvss
// @Accept json
// @Produce json
// @Param request body schemas.EvaluateRequest true "Vector or score"
// @Success 200 {object} cvss.Evaluation
// @Failure 422 {object} schemas.ErrorResponse
// @Router /evaluate [post]
func (h *cvssHandler) evaluate(c *fiber.Ctx) error {
	var req schemas.EvaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	ev, err := h.scorer.Evaluate(c.Context(), apiSource, req.Input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ev)
}

func (h *cvssHandler) scoreVectorRequest(c *fiber.Ctx) (*cvss.Result, error) {
	var req schemas.VectorRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := vala.BeginValidation().Validate(
		vala.StringNotEmpty(strings.TrimSpace(req.Vector), "vector"),
	).Check(); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	profile, err := requestProfile(c, req.Profile)
	if err != nil {
		return nil, err
	}
	return h.scorer.ScoreVector(c.Context(), apiSource, req.Vector, profile)
}

func (h *cvssHandler) scoreMetricsRequest(c *fiber.Ctx) (*cvss.Result, error) {
	var req schemas.MetricsRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	profile, err := requestProfile(c, req.Profile)
	if err != nil {
		return nil, err
	}
	metrics, err := upperKeys(req.Metrics)
	if err != nil {
		return nil, err
	}
	// an absent metrics object is reported by the engine as missing base metrics
	return h.scorer.ScoreMetrics(c.Context(), apiSource, metrics, profile)
}

// upperKeys accepts lower case abbreviations and codes from JSON clients.
// Keys that are not metric abbreviations are dropped; two keys naming the
// same metric are rejected.
func upperKeys(m cvss.Metrics) (cvss.Metrics, error) {
	out := make(cvss.Metrics, len(m))
	for k, v := range m {
		abbr := strings.ToUpper(strings.TrimSpace(k))
		if !cvss.IsMetric(abbr) {
			continue
		}
		if _, dup := out[abbr]; dup {
			return nil, fiber.NewError(fiber.StatusBadRequest, "metric "+abbr+" given more than once")
		}
		out[abbr] = strings.ToUpper(strings.TrimSpace(v))
	}
	return out, nil
}

func sendXML(c *fiber.Ctx, res *cvss.Result) error {
	doc, err := cvss.RenderXML(res)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.SendString(doc)
}

// respondError maps engine validation failures to 422 and passes fiber
// errors through. Anything else is an internal error.
func respondError(c *fiber.Ctx, err error) error {
	var verr *cvss.ValidationError
	if errors.As(err, &verr) {
		metrics := verr.Metrics
		if metrics == nil {
			metrics = []string{}
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(schemas.ErrorResponse{
			Success:      false,
			ErrorType:    string(verr.Kind),
			ErrorMetrics: metrics,
		})
	}

	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		return ferr
	}

	slog.Error("cvss request failed", "component", "api", "path", c.Path(), "err", err)
	return fiber.NewError(fiber.StatusInternalServerError, "internal error")
}
