// internal/core/services/report_service_test.go
package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/domain"
	"github.com/alezcf/ProyectoGestion-sub000/internal/core/services"
	"github.com/alezcf/ProyectoGestion-sub000/test/helpers"
)

func TestReportService_ListReports(t *testing.T) {
	tests := []struct {
		name          string
		status        domain.ReportStatus
		setupMocks    func(f *serviceFixtures)
		expectedError bool
		errorContains string
	}{
		{
			name:   "lists_all_when_status_is_empty",
			status: "",
			setupMocks: func(f *serviceFixtures) {
				f.uow.ReportsRepo.EXPECT().
					FindAll(gomock.Any(), domain.ReportStatus("")).
					Return([]domain.Report{{ID: 1}, {ID: 2}}, nil)
			},
		},
		{
			name:   "filters_by_pending_status",
			status: domain.ReportStatusPending,
			setupMocks: func(f *serviceFixtures) {
				f.uow.ReportsRepo.EXPECT().
					FindAll(gomock.Any(), domain.ReportStatusPending).
					Return([]domain.Report{{ID: 1}}, nil)
			},
		},
		{
			name:          "rejects_unknown_status",
			status:        domain.ReportStatus("Archivado"),
			setupMocks:    func(f *serviceFixtures) {},
			expectedError: true,
			errorContains: "invalid report status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newServiceFixtures(ctrl)
			tt.setupMocks(f)

			service := services.NewReportService(f.uow, helpers.TestLogger())
			reports, err := service.ListReports(context.Background(), tt.status)

			if tt.expectedError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.True(t, domain.IsValidation(err))
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, reports)
			}
		})
	}
}

func TestReportService_ResolveReport(t *testing.T) {
	t.Run("marks_report_resolved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newServiceFixtures(ctrl)
		f.uow.ReportsRepo.EXPECT().
			UpdateStatus(gomock.Any(), int64(5), domain.ReportStatusResolved).
			Return(nil)

		service := services.NewReportService(f.uow, helpers.TestLogger())
		require.NoError(t, service.ResolveReport(context.Background(), 5))
	})

	t.Run("missing_report_surfaces_not_found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newServiceFixtures(ctrl)
		f.uow.ReportsRepo.EXPECT().
			UpdateStatus(gomock.Any(), int64(404), domain.ReportStatusResolved).
			Return(domain.NewNotFoundError("reporte", 404))

		service := services.NewReportService(f.uow, helpers.TestLogger())
		err := service.ResolveReport(context.Background(), 404)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestReportService_DeleteReport(t *testing.T) {
	t.Run("deletes_report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newServiceFixtures(ctrl)
		f.uow.ReportsRepo.EXPECT().
			Delete(gomock.Any(), int64(5)).
			Return(nil)

		service := services.NewReportService(f.uow, helpers.TestLogger())
		require.NoError(t, service.DeleteReport(context.Background(), 5))
	})

	t.Run("missing_report_surfaces_not_found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newServiceFixtures(ctrl)
		f.uow.ReportsRepo.EXPECT().
			Delete(gomock.Any(), int64(404)).
			Return(domain.NewNotFoundError("reporte", 404))

		service := services.NewReportService(f.uow, helpers.TestLogger())
		err := service.DeleteReport(context.Background(), 404)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})
}
