package xlsexport

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	analyticsapimodels "onboard-tools-backend/models/api/analytics"
	dbmodels "onboard-tools-backend/models/db"
)

type Provider interface {
	ExportApplicantList(list []dbmodels.Applicant) (*bytes.Buffer, error)
	ExportFunnel(data analyticsapimodels.FunnelData) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var applicantHeaders = []string{"Name", "Contacts", "Position", "Experience", "Location", "Applied", "Status", "In stage (days)", "Rating", "Skills"}

func (i impl) ExportApplicantList(list []dbmodels.Applicant) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, applicantHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		row, err = writeApplicantData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data table")
		}
	}
	f.SetSheetName(sheet, "Applicants")
	return f.WriteToBuffer()
}

func writeApplicantData(f *excelize.File, sheet string, list []dbmodels.Applicant, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(applicantHeaders), len(list)+1); err != nil {
		return row, err
	}
	now := time.Now()
	for _, item := range list {
		row++
		// "Name"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Name); err != nil {
			return row, err
		}

		// "Contacts"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v\r%v", item.Phone, item.Email)); err != nil {
			return row, err
		}

		// "Position"
		col++
		if err := writeColumn(f, sheet, col, row, item.JobTitle); err != nil {
			return row, err
		}

		// "Experience"
		col++
		if err := writeColumn(f, sheet, col, row, item.Experience); err != nil {
			return row, err
		}

		// "Location"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v, %v", item.City, item.Country)); err != nil {
			return row, err
		}

		// "Applied"
		col++
		if !item.AppliedDate.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.AppliedDate.Format("02.01.2006")); err != nil {
				return row, err
			}
		}

		// "Status"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Status)); err != nil {
			return row, err
		}

		// "In stage (days)"
		col++
		if !item.LastStatusChangeDate.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.StageAgeDays(now)); err != nil {
				return row, err
			}
		}

		// "Rating"
		col++
		if item.Rating > 0 {
			if err := writeColumn(f, sheet, col, row, item.Rating); err != nil {
				return row, err
			}
		}

		// "Skills"
		col++
		if err := writeColumn(f, sheet, col, row, strings.Join(item.Skills, ", ")); err != nil {
			return row, err
		}
	}
	return row, nil
}

var funnelHeaders = []string{"Stage", "Reached"}

func (i impl) ExportFunnel(data analyticsapimodels.FunnelData) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, funnelHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if err = applyDataCellStyle(f, sheet, 1, row+1, len(funnelHeaders), len(data.Stages)+1); err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx data table")
	}
	for _, stage := range data.Stages {
		row++
		if err = writeColumn(f, sheet, 1, row, string(stage.Stage)); err != nil {
			return nil, err
		}
		if err = writeColumn(f, sheet, 2, row, stage.Reached); err != nil {
			return nil, err
		}
	}
	f.SetSheetName(sheet, "Funnel")
	return f.WriteToBuffer()
}
