package controllers

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/randcut/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type cutAPI struct {
	baseAPI
	cutService CutService
}

func New(cutService CutService, log *zap.Logger) *cutAPI {
	return &cutAPI{
		baseAPI:    baseAPI{log: log},
		cutService: cutService,
	}
}

func (api *cutAPI) Routes(group *helper.RouteGroup) {
	group.POST("/maxcut", api.maxCut)
	group.POST("/randomcut", api.randomCut)
	group.POST("/mincut", api.minCut)
	group.GET("/ws/mincut", api.minCutStream)
}

// maxCut godoc
//
//	@Summary		derandomized max cut (method of conditional expectations), cut >= |E|/2
//	@Tags			cut
//	@Accept			json
//	@Produce		json
//	@Router			/api/maxcut [post]
func (api *cutAPI) maxCut(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request maxCutRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := validate(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	g, err := request.toGraph()
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	cut, err := api.cutService.MaxCut(g)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewMaxCutResponse(cut, g.NumberOfEdges())}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// randomCut godoc
//
//	@Summary		uniformly random cut plus statistics over repeated samples
//	@Tags			cut
//	@Accept			json
//	@Produce		json
//	@Router			/api/randomcut [post]
func (api *cutAPI) randomCut(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request randomCutRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := validate(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	g, err := request.toGraph()
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	cut, stats, err := api.cutService.RandomCut(g, request.Seed, request.Samples)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewRandomCutResponse(cut, stats)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// minCut godoc
//
//	@Summary		Karger min cut estimate, amplified over independent trials
//	@Tags			cut
//	@Accept			json
//	@Produce		json
//	@Router			/api/mincut [post]
func (api *cutAPI) minCut(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request minCutRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := validate(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	g, params, err := request.toParams()
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	res, err := api.cutService.MinCut(r.Context(), g, params, nil)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": NewMinCutResponse(res, g.NumberOfVertices(), params.Strategy)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
