// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/fieldsync/internal/logger"
	"github.com/MKhiriev/fieldsync/internal/store"
	"github.com/MKhiriev/fieldsync/internal/utils"
	"github.com/MKhiriev/fieldsync/models"
)

// recordService is the concrete implementation of RecordService. It takes
// the author of an upload from the authenticated request and the write time
// from clock.
type recordService struct {
	records store.RecordRepository
	clock   func() time.Time

	logger *logger.Logger
}

// NewRecordService constructs a RecordService on top of records. A nil
// clock means time.Now.
func NewRecordService(records store.RecordRepository, clock func() time.Time, logger *logger.Logger) RecordService {
	if clock == nil {
		clock = time.Now
	}
	return &recordService{records: records, clock: clock, logger: logger}
}

func (s *recordService) now() int64 {
	return s.clock().Unix()
}

// CreatePatient stores a patient uploaded by a device together with its
// readings. Readings are attached to the patient regardless of the patient
// id they carry.
func (s *recordService) CreatePatient(ctx context.Context, patient models.PatientAndReadings) (models.PatientAndReadings, error) {
	log := logger.FromContext(ctx)

	workerID, ok := utils.GetWorkerIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*recordService.CreatePatient").Msg("no worker id in context")
		return models.PatientAndReadings{}, ErrNoWorkerInContext
	}

	for i := range patient.Readings {
		patient.Readings[i].PatientID = patient.ID
		if patient.Readings[i].Referral != nil {
			patient.Readings[i].Referral.PatientID = patient.ID
			patient.Readings[i].Referral.ReadingID = patient.Readings[i].ID
		}
	}

	if err := s.records.CreatePatient(ctx, patient, workerID, s.now()); err != nil {
		log.Err(err).Str("func", "*recordService.CreatePatient").Str("patient_id", patient.ID).Msg("failed to create patient")
		return models.PatientAndReadings{}, fmt.Errorf("failed to create patient: %w", err)
	}

	return patient, nil
}

// GetPatient returns a patient with every reading recorded for it.
func (s *recordService) GetPatient(ctx context.Context, patientID string) (models.PatientAndReadings, error) {
	patient, err := s.records.GetPatient(ctx, patientID)
	if err != nil {
		return models.PatientAndReadings{}, fmt.Errorf("failed to get patient: %w", err)
	}

	readings, err := s.records.GetPatientReadings(ctx, patientID)
	if err != nil {
		return models.PatientAndReadings{}, fmt.Errorf("failed to get patient readings: %w", err)
	}
	if readings == nil {
		readings = []models.Reading{}
	}

	return models.PatientAndReadings{Patient: patient, Readings: readings}, nil
}

func (s *recordService) GetPatientInfo(ctx context.Context, patientID string) (models.Patient, error) {
	patient, err := s.records.GetPatient(ctx, patientID)
	if err != nil {
		return models.Patient{}, fmt.Errorf("failed to get patient info: %w", err)
	}
	return patient, nil
}

// UpdatePatientInfo replaces the demographic fields of a patient and returns
// the stored result.
func (s *recordService) UpdatePatientInfo(ctx context.Context, patient models.Patient) (models.Patient, error) {
	log := logger.FromContext(ctx)

	if err := s.records.UpdatePatient(ctx, patient, s.now()); err != nil {
		log.Err(err).Str("func", "*recordService.UpdatePatientInfo").Str("patient_id", patient.ID).Msg("failed to update patient")
		return models.Patient{}, fmt.Errorf("failed to update patient: %w", err)
	}

	return s.GetPatientInfo(ctx, patient.ID)
}

func (s *recordService) CreateReading(ctx context.Context, reading models.Reading) (models.Reading, error) {
	log := logger.FromContext(ctx)

	workerID, ok := utils.GetWorkerIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*recordService.CreateReading").Msg("no worker id in context")
		return models.Reading{}, ErrNoWorkerInContext
	}

	if reading.Referral != nil {
		reading.Referral.ReadingID = reading.ID
		reading.Referral.PatientID = reading.PatientID
	}

	if err := s.records.CreateReading(ctx, reading, workerID, s.now()); err != nil {
		log.Err(err).Str("func", "*recordService.CreateReading").Str("reading_id", reading.ID).Msg("failed to create reading")
		return models.Reading{}, fmt.Errorf("failed to create reading: %w", err)
	}

	return reading, nil
}

func (s *recordService) GetReading(ctx context.Context, readingID string) (models.Reading, error) {
	reading, err := s.records.GetReading(ctx, readingID)
	if err != nil {
		return models.Reading{}, fmt.Errorf("failed to get reading: %w", err)
	}
	return reading, nil
}

// GetAssessments returns the assessments of an existing reading. A reading
// without assessments yields an empty list, an unknown reading ErrNotFound.
func (s *recordService) GetAssessments(ctx context.Context, readingID string) ([]models.Assessment, error) {
	if _, err := s.records.GetReading(ctx, readingID); err != nil {
		return nil, fmt.Errorf("failed to get reading: %w", err)
	}

	assessments, err := s.records.GetAssessments(ctx, readingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assessments: %w", err)
	}
	if assessments == nil {
		assessments = []models.Assessment{}
	}
	return assessments, nil
}

// CreateAssessment records a follow-up for a reading. The reading's referral,
// if any, becomes assessed.
func (s *recordService) CreateAssessment(ctx context.Context, assessment models.Assessment) (models.Assessment, error) {
	log := logger.FromContext(ctx)

	if assessment.DateAssessed == 0 {
		assessment.DateAssessed = s.now()
	}

	created, err := s.records.CreateAssessment(ctx, assessment, s.now())
	if err != nil {
		log.Err(err).Str("func", "*recordService.CreateAssessment").Str("reading_id", assessment.ReadingID).Msg("failed to create assessment")
		return models.Assessment{}, fmt.Errorf("failed to create assessment: %w", err)
	}

	return created, nil
}
