package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"survey-cruncher-go/internal/dataset"
	"survey-cruncher-go/internal/drivers"
	"survey-cruncher-go/internal/export"
	"survey-cruncher-go/internal/logger"
	"survey-cruncher-go/internal/pipeline"
	"survey-cruncher-go/internal/types"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "survey-cruncher-go").Info("starting service")

	dataPath := envOr("DATASET_PATH", "survey_data.xlsx")
	if url := os.Getenv("DATASET_URL"); url != "" {
		log.WithField("dataset_url", url).Info("fetching dataset")
		if err := dataset.Fetch(url, dataPath); err != nil {
			log.WithError(err).Fatal("failed to fetch dataset")
		}
	}
	log.WithField("dataset_path", dataPath).Info("loading dataset")
	tbl, err := dataset.Load(dataPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load dataset")
	}
	summary := dataset.Summarize(tbl)
	log.WithField("total_respondents", summary.TotalRespondents).Info("dataset loaded")

	mux := http.NewServeMux()

	// health
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).Info("health check")
		fmt.Fprint(w, "ok")
	})

	// column profile for mapping UIs
	mux.HandleFunc("/summary", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).WithField("handler", "summary").Info("summary requested")
		writeJSON(w, http.StatusOK, summary)
	})

	// cross-tab endpoint
	mux.HandleFunc("/crunch", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "crunch")
		var cfg types.CrunchConfig
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			reqLog.WithError(err).Warn("bad request body")
			http.Error(w, "invalid json body", http.StatusBadRequest)
			return
		}
		start := time.Now()
		rep, err := pipeline.Crunch(tbl, cfg)
		reqLog.WithField("duration_ms", time.Since(start).Milliseconds()).Info("crunch finished")
		if err != nil {
			writeFailure(w, reqLog, err)
			return
		}
		writeJSON(w, http.StatusOK, rep)
	})

	// key driver endpoint
	mux.HandleFunc("/drivers", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "drivers")
		var cfg types.DriverConfig
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			reqLog.WithError(err).Warn("bad request body")
			http.Error(w, "invalid json body", http.StatusBadRequest)
			return
		}
		results, err := drivers.Analyze(tbl, cfg)
		if err != nil {
			writeFailure(w, reqLog, err)
			return
		}
		writeJSON(w, http.StatusOK, results)
	})

	// crunch + excel download
	mux.HandleFunc("/export", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "export")
		var cfg types.CrunchConfig
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			reqLog.WithError(err).Warn("bad request body")
			http.Error(w, "invalid json body", http.StatusBadRequest)
			return
		}
		rep, err := pipeline.Crunch(tbl, cfg)
		if err != nil {
			writeFailure(w, reqLog, err)
			return
		}
		data, err := export.Bytes(rep)
		if err != nil {
			reqLog.WithError(err).Error("export failed")
			http.Error(w, "export failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="Clean_Survey_Results.xlsx"`)
		if _, err := w.Write(data); err != nil {
			reqLog.WithError(err).Error("failed to write workbook response")
		}
	})

	addr := fmt.Sprintf(":%s", envOr("PORT", "8080"))
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}

// writeFailure maps domain errors onto status codes: bad selections are
// the caller's fault, a thin regression sample is unprocessable.
func writeFailure(w http.ResponseWriter, log *logrus.Entry, err error) {
	var cfgErr *types.ConfigurationError
	var dataErr *types.InsufficientDataError
	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &cfgErr):
		status = http.StatusBadRequest
	case errors.As(err, &dataErr):
		status = http.StatusUnprocessableEntity
	}
	log.Warn(err.Error())
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
