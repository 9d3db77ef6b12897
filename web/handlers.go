package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"tableside/order"
)

// Handler serves the menu, order and kitchen pages over an OrderStore.
type Handler struct {
	store OrderStore
	log   zerolog.Logger
}

type menuView struct {
	TableNumber int
}

type summaryView struct {
	CustomerName string
	OrderSummary string
	TableNumber  int
}

type kitchenView struct {
	Orders []order.Record
}

// Menu renders the menu for a table.
func (h *Handler) Menu(c echo.Context) error {
	table, err := pathNumber(c, "table_number")
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "main_menu.html", menuView{TableNumber: table})
}

// PlaceOrder validates the submitted form and stores the order.
func (h *Handler) PlaceOrder(c echo.Context) error {
	table, err := pathNumber(c, "table_number")
	if err != nil {
		return err
	}

	var req order.CreateRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	req.TableNumber = table
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid order: "+err.Error()).SetInternal(err)
	}

	o, err := h.store.Create(c.Request().Context(), req.CustomerName, req.TableNumber, req.Orders)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error placing order: "+err.Error()).SetInternal(err)
	}
	return c.Render(http.StatusOK, "order_summary.html", summaryView{
		CustomerName: o.CustomerName,
		TableNumber:  o.TableNumber,
		OrderSummary: o.Orders,
	})
}

// Kitchen lists every pending order.
func (h *Handler) Kitchen(c echo.Context) error {
	orders, err := h.store.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error loading orders: "+err.Error()).SetInternal(err)
	}
	return c.Render(http.StatusOK, "kitchen.html", kitchenView{Orders: order.Records(orders)})
}

// DeleteOrder removes an order and sends the kitchen back to its list.
func (h *Handler) DeleteOrder(c echo.Context) error {
	id, err := pathNumber(c, "id")
	if err != nil {
		return err
	}

	if err := h.store.Delete(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, order.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound).SetInternal(err)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Error deleting order: "+err.Error()).SetInternal(err)
	}
	return c.Redirect(http.StatusFound, c.Echo().Reverse(kitchenRoute))
}

// Health reports whether the database answers.
func (h *Handler) Health(c echo.Context) error {
	if err := h.store.Ping(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable).SetInternal(err)
	}
	return c.String(http.StatusOK, "ok")
}

// pathNumber parses a non-negative integer path segment. Anything else means
// the route does not exist.
func pathNumber(c echo.Context, name string) (int, error) {
	n, err := strconv.ParseUint(c.Param(name), 10, 63)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound).SetInternal(err)
	}
	return int(n), nil
}

// handleError writes err as a plain-text response.
func (h *Handler) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = http.StatusText(code)
		if m, ok := he.Message.(string); ok && m != "" {
			msg = m
		}
	}

	ev := h.log.Debug()
	if code >= http.StatusInternalServerError {
		ev = h.log.Error()
	}
	ev.Err(err).
		Int("status", code).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("request failed")

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.String(code, msg)
	}
	if err != nil {
		h.log.Error().Err(err).Msg("write error response")
	}
}
