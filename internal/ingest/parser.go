// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ingest streams the batched readings download into bounded sinks
// without holding the whole response in memory.
//
// The payload is a single JSON object:
//
//	{
//	  "total": 3,
//	  "readings":     [ {...}, ... ],
//	  "newReferrals": [ {...}, ... ],
//	  "newFollowups": [ {...}, ... ]
//	}
//
// Records are decoded one at a time and handed to the matching [Sink] while
// the rest of the body is still arriving.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/fieldsync/models"
	"github.com/goccy/go-json"
)

// Payload field names. The long forms are what older servers send.
const (
	fieldTotal           = "total"
	fieldReadings        = "readings"
	fieldReferrals       = "newReferrals"
	fieldReferralsLegacy = "newReferralsForOldReadings"
	fieldFollowups       = "newFollowups"
	fieldFollowupsLegacy = "newFollowupsForOldReadings"
)

// ProgressFunc receives the number of records processed so far and the
// total announced by the payload.
type ProgressFunc func(processed, total int)

// Sinks are the three destinations of a readings stream.
type Sinks struct {
	Readings    *Sink[models.Reading]
	Referrals   *Sink[models.Referral]
	Assessments *Sink[models.Assessment]
}

// NewSinks creates the three sinks with the same capacity.
func NewSinks(capacity int) Sinks {
	return Sinks{
		Readings:    NewSink[models.Reading](capacity),
		Referrals:   NewSink[models.Referral](capacity),
		Assessments: NewSink[models.Assessment](capacity),
	}
}

// CloseAll closes every sink with err. Sinks that are already closed keep
// their original result.
func (s Sinks) CloseAll(err error) {
	s.Readings.Close(err)
	s.Referrals.Close(err)
	s.Assessments.Close(err)
}

// Ingest reads the payload from body and dispatches every record into
// sinks, calling onProgress after each one. All three sinks are closed when
// Ingest returns: cleanly on success, with an error wrapping
// ErrIngestAborted otherwise.
//
// A payload announcing total == 0 is not read any further.
func Ingest(ctx context.Context, body io.Reader, sinks Sinks, onProgress ProgressFunc) error {
	p := &parser{
		dec:        json.NewDecoder(body),
		sinks:      sinks,
		onProgress: onProgress,
		total:      -1,
	}

	if err := p.run(ctx); err != nil {
		err = fmt.Errorf("%w: %w", ErrIngestAborted, err)
		sinks.CloseAll(err)
		return err
	}

	sinks.CloseAll(nil)
	return nil
}

type parser struct {
	dec        *json.Decoder
	sinks      Sinks
	onProgress ProgressFunc

	total     int
	processed int
}

func (p *parser) run(ctx context.Context) error {
	if err := p.expectDelim('{'); err != nil {
		return err
	}

	for p.dec.More() {
		if err := ctx.Err(); err != nil {
			return err
		}

		key, err := p.nextKey()
		if err != nil {
			return err
		}

		switch key {
		case fieldTotal:
			if err = p.dec.Decode(&p.total); err != nil {
				return fmt.Errorf("decode %s: %w", fieldTotal, err)
			}
			if p.total == 0 {
				return nil
			}
		case fieldReadings:
			err = streamArray(ctx, p, key, p.sinks.Readings)
		case fieldReferrals, fieldReferralsLegacy:
			err = streamArray(ctx, p, key, p.sinks.Referrals)
		case fieldFollowups, fieldFollowupsLegacy:
			err = streamArray(ctx, p, key, p.sinks.Assessments)
		default:
			var skipped json.RawMessage
			err = p.dec.Decode(&skipped)
		}
		if err != nil {
			return err
		}
	}

	return p.expectDelim('}')
}

// streamArray decodes one record array element by element into sink and
// closes the sink once the closing bracket has been read.
func streamArray[T any](ctx context.Context, p *parser, field string, sink *Sink[T]) error {
	if p.total < 0 {
		return fmt.Errorf("%w: %s", ErrTotalNotFirst, field)
	}

	tok, err := p.dec.Token()
	if err != nil {
		return fmt.Errorf("read %s: %w", field, err)
	}
	if tok == nil {
		sink.Close(nil)
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return fmt.Errorf("%w: %s is %v, want array", ErrMalformedPayload, field, tok)
	}

	for p.dec.More() {
		var item T
		if err = p.dec.Decode(&item); err != nil {
			return fmt.Errorf("decode %s[%d]: %w", field, p.processed, err)
		}
		if err = sink.Send(ctx, item); err != nil {
			return fmt.Errorf("send %s: %w", field, err)
		}

		p.processed++
		if p.onProgress != nil {
			p.onProgress(p.processed, p.total)
		}
	}

	if err = p.expectDelim(']'); err != nil {
		return fmt.Errorf("close %s: %w", field, err)
	}

	sink.Close(nil)
	return nil
}

func (p *parser) nextKey() (string, error) {
	tok, err := p.dec.Token()
	if err != nil {
		return "", unexpectedEOF(err)
	}

	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("%w: expected field name, got %v", ErrMalformedPayload, tok)
	}
	return key, nil
}

func (p *parser) expectDelim(want json.Delim) error {
	tok, err := p.dec.Token()
	if err != nil {
		return unexpectedEOF(err)
	}

	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%w: expected %q, got %v", ErrMalformedPayload, want, tok)
	}
	return nil
}

// unexpectedEOF turns a premature io.EOF into io.ErrUnexpectedEOF so that a
// truncated body is never mistaken for a clean end of stream.
func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
