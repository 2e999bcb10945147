package controllers

import (
	"bytes"
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/randcut/pkg/partitioner"
	"go.uber.org/zap"
)

type streamWriter struct {
	mu   sync.Mutex
	conn net.Conn
}

func (sw *streamWriter) write(v interface{}) error {
	js, err := json.Marshal(v)
	if err != nil {
		return err
	}
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return wsutil.WriteServerText(sw.conn, js)
}

func (sw *streamWriter) writeError(status int, message string) error {
	return sw.write(envelope{"type": "error", "error": map[string]string{
		"code":    http.StatusText(status),
		"message": message,
	}})
}

// minCutStream upgrades to a websocket, reads one min cut request and streams a
// {"type":"trial"} frame per finished trial followed by a {"type":"result"} frame.
func (api *cutAPI) minCutStream(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	conn, _, _, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		api.log.Info("websocket upgrade error", zap.Error(err), zap.String("remote_addr", r.RemoteAddr))
		return
	}
	defer conn.Close()
	// deadlines of the http server still apply to the hijacked connection
	_ = conn.SetDeadline(time.Time{})

	sw := &streamWriter{conn: conn}

	msg, op, err := wsutil.ReadClientData(conn)
	if err != nil {
		api.log.Info("websocket read error", zap.Error(err))
		return
	}
	if op != ws.OpText {
		_ = sw.writeError(http.StatusBadRequest, "expected a text frame with a JSON request")
		return
	}

	var request minCutRequest
	dec := json.NewDecoder(bytes.NewReader(msg))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&request); err != nil {
		_ = sw.writeError(http.StatusBadRequest, "body contains badly-formed JSON: "+err.Error())
		return
	}
	if err := validate(request); err != nil {
		_ = sw.writeError(http.StatusBadRequest, err.Error())
		return
	}

	g, params, err := request.toParams()
	if err != nil {
		_ = sw.writeError(http.StatusBadRequest, err.Error())
		return
	}

	observer := func(tr partitioner.TrialResult) {
		if err := sw.write(trialMessage{Type: "trial", Trial: tr.Trial, CutSize: tr.CutSize}); err != nil {
			api.log.Debug("websocket trial frame dropped", zap.Error(err))
		}
	}

	res, err := api.cutService.MinCut(r.Context(), g, params, observer)
	if err != nil {
		_ = sw.writeError(http.StatusBadRequest, err.Error())
		return
	}

	if err := sw.write(envelope{"type": "result",
		"data": NewMinCutResponse(res, g.NumberOfVertices(), params.Strategy)}); err != nil {
		api.log.Info("websocket write error", zap.Error(err))
	}
}
