package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/gorilla/mux"

	"github.com/fossabot/Tsundoku/pkg/logger"
	"github.com/fossabot/Tsundoku/pkg/manager"
	"github.com/fossabot/Tsundoku/pkg/storage"
	"github.com/fossabot/Tsundoku/pkg/storage/sqlite/schema/gen/model"
	"github.com/fossabot/Tsundoku/pkg/storage/sqlite/schema/gen/table"
)

func pathID(r *http.Request, key string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[key], 10, 64)
}

// decodeStrict rejects unknown fields and type mismatches so a malformed
// request never reaches storage.
func decodeStrict(r *http.Request, into any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(into)
}

// ListShows lists all tracked shows
func (s Server) ListShows() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		shows, err := s.storage.ListShows(r.Context())
		if err != nil {
			log.Errorw("failed to list shows", "error", err)
			writeErrorResponse(w, http.StatusInternalServerError, errors.New("failed to list shows"))
			return
		}

		writeResultResponse(w, http.StatusOK, shows)
	}
}

type createShowRequest struct {
	SearchTitle   string  `json:"searchTitle" validate:"required"`
	DesiredFormat *string `json:"desiredFormat"`
	DesiredFolder *string `json:"desiredFolder"`
	Season        *int32  `json:"season"`
	EpisodeOffset int32   `json:"episodeOffset"`
}

// CreateShow starts tracking a new show
func (s Server) CreateShow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		var req createShowRequest
		if err := decodeStrict(r, &req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, errors.New("invalid request body"))
			return
		}

		if err := s.validate.Struct(req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		show := model.Shows{
			SearchTitle:   req.SearchTitle,
			DesiredFormat: req.DesiredFormat,
			DesiredFolder: req.DesiredFolder,
			Season:        1,
			EpisodeOffset: req.EpisodeOffset,
		}
		if req.Season != nil {
			show.Season = *req.Season
		}

		id, err := s.storage.CreateShow(r.Context(), show)
		if err != nil {
			log.Errorw("failed to create show", "error", err)
			writeErrorResponse(w, http.StatusInternalServerError, errors.New("failed to create show"))
			return
		}

		created, err := s.storage.GetShow(r.Context(), id)
		if err != nil {
			log.Errorw("failed to load created show", "error", err)
			writeErrorResponse(w, http.StatusInternalServerError, errors.New("failed to load created show"))
			return
		}

		writeResultResponse(w, http.StatusOK, created)
	}
}

// GetShow fetches a single show by id
func (s Server) GetShow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		id, err := pathID(r, "id")
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, errors.New("invalid show id"))
			return
		}

		show, err := s.storage.GetShow(r.Context(), id)
		if errors.Is(err, storage.ErrNotFound) {
			writeErrorResponse(w, http.StatusNotFound, errors.New("show not found"))
			return
		}
		if err != nil {
			log.Errorw("failed to get show", "show", id, "error", err)
			writeErrorResponse(w, http.StatusInternalServerError, errors.New("failed to get show"))
			return
		}

		writeResultResponse(w, http.StatusOK, show)
	}
}

// DeleteShow stops tracking a show
func (s Server) DeleteShow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		id, err := pathID(r, "id")
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, errors.New("invalid show id"))
			return
		}

		err = s.storage.DeleteShow(r.Context(), id)
		if errors.Is(err, storage.ErrNotFound) {
			writeErrorResponse(w, http.StatusNotFound, errors.New("show not found"))
			return
		}
		if err != nil {
			log.Errorw("failed to delete show", "show", id, "error", err)
			writeErrorResponse(w, http.StatusInternalServerError, errors.New("failed to delete show"))
			return
		}

		writeResultResponse(w, http.StatusOK, nil)
	}
}

// ListShowEntries lists the tracked entries of a show
func (s Server) ListShowEntries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		id, err := pathID(r, "id")
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, errors.New("invalid show id"))
			return
		}

		if _, err := s.storage.GetShow(r.Context(), id); errors.Is(err, storage.ErrNotFound) {
			writeErrorResponse(w, http.StatusNotFound, errors.New("show not found"))
			return
		} else if err != nil {
			log.Errorw("failed to get show", "show", id, "error", err)
			writeErrorResponse(w, http.StatusInternalServerError, errors.New("failed to get show"))
			return
		}

		entries, err := s.storage.ListEntries(r.Context(), table.ShowEntry.ShowID.EQ(sqlite.Int64(id)))
		if err != nil {
			log.Errorw("failed to list entries", "show", id, "error", err)
			writeErrorResponse(w, http.StatusInternalServerError, errors.New("failed to list entries"))
			return
		}

		writeResultResponse(w, http.StatusOK, entries)
	}
}

// GetShowEntry fetches a single entry of a show
func (s Server) GetShowEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		id, err := pathID(r, "id")
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, errors.New("invalid show id"))
			return
		}

		entryID, err := pathID(r, "entryID")
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, errors.New("invalid entry id"))
			return
		}

		entry, err := s.storage.GetEntry(r.Context(), entryID)
		if errors.Is(err, storage.ErrNotFound) {
			writeErrorResponse(w, http.StatusNotFound, errors.New("entry not found"))
			return
		}
		if err != nil {
			log.Errorw("failed to get entry", "entry", entryID, "error", err)
			writeErrorResponse(w, http.StatusInternalServerError, errors.New("failed to get entry"))
			return
		}

		if int64(entry.ShowID) != id {
			writeErrorResponse(w, http.StatusNotFound, errors.New("entry not found"))
			return
		}

		writeResultResponse(w, http.StatusOK, entry)
	}
}

type beginAcquisitionRequest struct {
	Episode *int32 `json:"episode" validate:"required"`
	Magnet  string `json:"magnet" validate:"required"`
}

// BeginAcquisition manually starts a download for a show's episode
func (s Server) BeginAcquisition() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		id, err := pathID(r, "id")
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, errors.New("invalid show id"))
			return
		}

		var req beginAcquisitionRequest
		if err := decodeStrict(r, &req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, errors.New("invalid request body"))
			return
		}

		if err := s.validate.Struct(req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		entryID, err := s.acquirer.BeginAcquisition(r.Context(), id, *req.Episode, req.Magnet)
		if errors.Is(err, manager.ErrEntryExists) {
			writeErrorResponse(w, http.StatusConflict, err)
			return
		}
		if errors.Is(err, storage.ErrNotFound) {
			writeErrorResponse(w, http.StatusNotFound, errors.New("show not found"))
			return
		}
		if err != nil {
			log.Errorw("failed to begin acquisition", "show", id, "error", err)
			writeErrorResponse(w, http.StatusInternalServerError, errors.New("failed to begin acquisition"))
			return
		}

		writeResultResponse(w, http.StatusOK, map[string]int64{"entryId": entryID})
	}
}
