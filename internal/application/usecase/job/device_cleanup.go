// Package job contains the recurring batch jobs driven by the scheduler.
package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/pennyflow/backend/internal/application/adapter"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
)

// inactiveDeviceThreshold is how long a device may stay idle before the
// cleanup job removes its registration.
const inactiveDeviceThreshold = 90 * 24 * time.Hour

// DeviceCleanupJob bulk-removes device registrations that have been inactive
// past the threshold, across all users. Runs weekly.
type DeviceCleanupJob struct {
	devices adapter.DeviceRepository
	now     func() time.Time
}

// NewDeviceCleanupJob creates a new DeviceCleanupJob instance.
func NewDeviceCleanupJob(devices adapter.DeviceRepository) *DeviceCleanupJob {
	return &DeviceCleanupJob{
		devices: devices,
		now:     time.Now,
	}
}

// WithClock overrides the time source. Intended for tests.
func (j *DeviceCleanupJob) WithClock(now func() time.Time) *DeviceCleanupJob {
	j.now = now
	return j
}

// Name returns the scheduler identifier for this job.
func (j *DeviceCleanupJob) Name() string { return "device-cleanup" }

// Execute prunes stale devices in a single bulk operation and reports the
// number of users modified.
func (j *DeviceCleanupJob) Execute(ctx context.Context) (int64, error) {
	threshold := j.now().UTC().Add(-inactiveDeviceThreshold)

	usersModified, err := j.devices.PruneInactive(ctx, threshold)
	if err != nil {
		return 0, domainerror.NewJobError(
			domainerror.ErrCodePopulationFetchFailed,
			"failed to prune inactive devices",
			err,
		)
	}

	slog.Info("Device cleanup job completed",
		"job", j.Name(),
		"threshold", threshold,
		"users_modified", usersModified,
	)

	return usersModified, nil
}
