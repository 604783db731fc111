package api

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/clientmeta/handler"
	"github.com/dmitrymomot/clientmeta/pkg/binder"
	"github.com/dmitrymomot/clientmeta/pkg/clientip"
	"github.com/dmitrymomot/clientmeta/pkg/requestid"
	"github.com/dmitrymomot/clientmeta/svc/collector"
	"github.com/dmitrymomot/clientmeta/svc/telemetry"
)

var (
	// A body that is not declared JSON reads as an empty snapshot.
	bindSnapshot = binder.JSON(binder.AllowEmpty(), binder.IgnoreOtherMediaTypes())
	bindCollect  = binder.JSON(binder.AllowEmpty())
)

// snapshotRequest decodes leniently: mistyped fields are dropped rather than
// failing the request.
type snapshotRequest struct {
	telemetry.Snapshot
}

func (s *snapshotRequest) UnmarshalJSON(data []byte) error {
	snap, err := telemetry.DecodeSnapshot(data)
	if err != nil {
		return err
	}
	s.Snapshot = snap
	return nil
}

type collectRequest = telemetry.CollectRequest

type clientDataResponse struct {
	Success bool                 `json:"success"`
	Data    collector.ClientData `json:"data"`
}

type setCookiesResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	CookieValue string `json:"cookieValue"`
}

type clearCookiesResponse struct {
	Message string `json:"message"`
}

type collectResponse struct {
	Status        string `json:"status"`
	StoredRecords int    `json:"storedRecords"`
}

type recordsResponse struct {
	Count   int                `json:"count"`
	Records []telemetry.Record `json:"records"`
}

func (a *API) clientData(ctx handler.Context, _ struct{}) handler.Response {
	return handler.JSON(clientDataResponse{
		Success: true,
		Data:    a.collector.Collect(ctx.Request()),
	})
}

func (a *API) setCookies(ctx handler.Context, req snapshotRequest) handler.Response {
	token, err := a.cookies.SetCookies(ctx.ResponseWriter(), req.Snapshot, "")
	if err != nil {
		return handler.JSONError(err)
	}

	rec := a.observe(ctx.Request(), telemetry.Record{Snapshot: req.Snapshot})
	count := a.store.Append(rec)
	a.log.DebugContext(ctx, "snapshot stored", slog.Int("stored_records", count))

	return handler.JSON(setCookiesResponse{
		Status:      "success",
		Message:     "Cookies set successfully",
		CookieValue: token,
	})
}

func (a *API) clearCookies(ctx handler.Context, _ struct{}) handler.Response {
	a.cookies.ClearCookies(ctx.ResponseWriter())
	return handler.JSON(clearCookiesResponse{Message: "Cookies cleared"})
}

func (a *API) collect(ctx handler.Context, req collectRequest) handler.Response {
	if err := req.Validate(); err != nil {
		a.log.WarnContext(ctx, "collect rejected", slog.String("reason", err.Error()))
		return handler.JSONError(err)
	}

	count := a.store.Append(a.observe(ctx.Request(), req.Record()))
	return handler.JSON(collectResponse{Status: "success", StoredRecords: count})
}

func (a *API) listRecords(_ handler.Context, _ struct{}) handler.Response {
	records := a.store.ListAll()
	return handler.JSON(recordsResponse{Count: len(records), Records: records})
}

// observe fills the server-side fields of rec from r.
func (a *API) observe(r *http.Request, rec telemetry.Record) telemetry.Record {
	ip := clientip.GetIPFromContext(r.Context())
	if ip == "" {
		ip = clientip.GetIP(r)
	}
	rec.IP = ip
	rec.UserAgent = r.UserAgent()
	rec.RequestID = requestid.FromContext(r.Context())
	rec.ReceivedAt = a.now().UTC()
	return rec
}
