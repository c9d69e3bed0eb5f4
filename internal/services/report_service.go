package services

import (
	"MovingAssistant/internal/apperrors"
	"MovingAssistant/internal/config"
	"MovingAssistant/internal/dto"
	"MovingAssistant/internal/helpers"
	"MovingAssistant/internal/metrics"
	"MovingAssistant/internal/repository"
	"github.com/jonboulle/clockwork"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"sync"
)

const (
	triggerScheduled = "scheduled"
	triggerForced    = "forced"
)

// Reporter counts sessions and boxes on a cron schedule and on demand.
type Reporter struct {
	sessionRepo   repository.MovingSessionRepository
	boxRepo       repository.MovingBoxRepository
	clock         clockwork.Clock
	configuration *config.Configuration
	logService    LogService
	running       bool
	mutex         sync.Mutex
	cron          *cron.Cron
}

func NewReportService(
	sessionRepo repository.MovingSessionRepository,
	boxRepo repository.MovingBoxRepository,
	clock clockwork.Clock,
	logService LogService,
	configuration *config.Configuration,
) *Reporter {
	return &Reporter{
		sessionRepo:   sessionRepo,
		boxRepo:       boxRepo,
		clock:         clock,
		configuration: configuration,
		logService:    logService,
		cron:          cron.New(),
	}
}

// RunReport runs a report immediately. It fails with a conflict while another run is active.
func (r *Reporter) RunReport() (*dto.InventoryReportDto, error) {
	if !r.tryStart() {
		return nil, apperrors.ConflictError("report is in progress")
	}
	defer r.finish()
	return r.generate(triggerForced)
}

// StartReportCycle registers the scheduled report. An empty schedule disables it.
func (r *Reporter) StartReportCycle() error {
	schedule := r.configuration.Server.ReportConfig.Schedule
	if schedule == "" {
		r.logService.Log.Debug("report schedule not configured, scheduled reports disabled")
		return nil
	}
	_, err := r.cron.AddFunc(schedule, func() {
		if !r.tryStart() {
			return
		}
		defer r.finish()
		_, _ = r.generate(triggerScheduled)
	})
	if err != nil {
		r.logService.Log.WithFields(logrus.Fields{
			"job":   "report",
			"cron":  schedule,
			"error": err.Error(),
		}).Error("Failed to start report job")
		return err
	}
	r.cron.Start()
	r.logService.Log.WithFields(logrus.Fields{
		"job":  "report",
		"cron": schedule,
	}).Info("report job scheduled")
	return nil
}

// StopReportCycle stops the scheduler and waits for a running report to finish.
func (r *Reporter) StopReportCycle() {
	<-r.cron.Stop().Done()
}

func (r *Reporter) IsRunning() bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.running
}

func (r *Reporter) tryStart() bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if r.running {
		return false
	}
	r.running = true
	return true
}

func (r *Reporter) finish() {
	r.mutex.Lock()
	r.running = false
	r.mutex.Unlock()
}

func (r *Reporter) generate(trigger string) (*dto.InventoryReportDto, error) {
	report, err := r.collect()
	if err != nil {
		metrics.ReportRunsTotal.WithLabelValues(trigger, "error").Inc()
		r.logService.Log.WithFields(logrus.Fields{
			"job":     "report",
			"trigger": trigger,
			"status":  "error",
			"error":   err.Error(),
		}).Error("Failed to build inventory report")
		return nil, apperrors.PersistenceError("could not build inventory report", err)
	}
	metrics.ReportRunsTotal.WithLabelValues(trigger, "success").Inc()
	r.logService.Log.WithFields(logrus.Fields{
		"job":           "report",
		"trigger":       trigger,
		"status":        "success",
		"sessions":      report.Sessions,
		"boxes":         report.Boxes,
		"archivedBoxes": report.ArchivedBoxes,
	}).Info("inventory report finished")
	return report, nil
}

func (r *Reporter) collect() (*dto.InventoryReportDto, error) {
	sessions, err := r.sessionRepo.Count()
	if err != nil {
		return nil, err
	}
	boxes, err := r.boxRepo.Count()
	if err != nil {
		return nil, err
	}
	archived, err := r.boxRepo.CountArchived()
	if err != nil {
		return nil, err
	}
	return &dto.InventoryReportDto{
		Sessions:      sessions,
		Boxes:         boxes,
		ArchivedBoxes: archived,
		GeneratedAt:   helpers.FormatDate(helpers.Today(r.clock)),
	}, nil
}
