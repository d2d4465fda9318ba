package builder

import (
	"context"
	"fmt"

	"modlist-builder/core/modlist"
	"modlist-builder/core/reconcile"
	"modlist-builder/core/sequence"
	"modlist-builder/feature/manifest"
	"modlist-builder/feature/output"
	"modlist-builder/feature/preset"

	"go.uber.org/zap"
)

// Outcome is the result of a completed build.
type Outcome struct {
	Family    modlist.Family           `json:"family"`
	Items     []modlist.MergedItem     `json:"-"`
	NameList  string                   `json:"name_list"`
	IDList    string                   `json:"id_list"`
	Unmatched []modlist.UnmatchedEntry `json:"unmatched"`
	Warnings  []string                 `json:"warnings"`
	output.Summary
	TotalSize string `json:"total_size"`

	// Artifacts lists the files written by Build.
	Artifacts []output.Artifact `json:"-"`
}

// Service runs the pipeline for parsed presets.
type Service struct {
	manifests manifest.Loader
	writer    *output.Writer
	publisher *output.Publisher
	logger    *zap.Logger
}

// NewService creates a new build service. writer and publisher may be nil;
// Build then skips writing or publishing respectively.
func NewService(manifests manifest.Loader, writer *output.Writer, publisher *output.Publisher, logger *zap.Logger) *Service {
	return &Service{
		manifests: manifests,
		writer:    writer,
		publisher: publisher,
		logger:    logger,
	}
}

// Assemble reconciles and orders the preset without touching the disk.
// A nil confirmer declines.
func (s *Service) Assemble(ctx context.Context, doc *preset.Document, confirmer Confirmer) (*Outcome, error) {
	if confirmer == nil {
		confirmer = DeclineUnmatched
	}

	installed, err := s.manifests.Load(ctx, doc.Family)
	if err != nil {
		return nil, err
	}

	result, err := reconcile.Reconcile(doc.Entries, installed, reconcile.Options{
		OnEntry: func(entry modlist.PresetEntry) {
			s.logger.Debug("Preset entry", zap.String("name", entry.DisplayName), zap.Uint64("id", entry.ID))
		},
		OnWarning: func(w *modlist.ConflictingDisplayNamesError) {
			s.logger.Warn("Display name differs from manifest",
				zap.Uint64("id", w.ID),
				zap.String("preset_name", w.PresetName),
				zap.String("manifest_name", w.ManifestName),
			)
		},
	})
	if err != nil {
		return nil, err
	}

	if result.HasUnmatched() {
		s.logger.Warn("Preset entries not installed", zap.Int("count", len(result.Unmatched)))

		ok, err := confirmer.Confirm(ctx, result.Unmatched)
		if err != nil {
			return nil, fmt.Errorf("confirmation failed: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: %w", modlist.ErrTerminated, result.UnmatchedError())
		}
	}

	items := sequence.Sequence(result.Merged)
	summary := output.Summarize(items)

	warnings := make([]string, len(result.Warnings))
	for i, w := range result.Warnings {
		warnings[i] = w.Error()
	}

	s.logger.Info("Modlist assembled",
		zap.String("family", string(doc.Family)),
		zap.Int("count", summary.Count),
		zap.Int("unmatched", len(result.Unmatched)),
		zap.Int("conflicts", len(result.Warnings)),
		zap.String("size", summary.HumanSize()),
	)

	return &Outcome{
		Family:    doc.Family,
		Items:     items,
		NameList:  output.NameList(items),
		IDList:    output.IDList(items),
		Unmatched: result.Unmatched,
		Warnings:  warnings,
		Summary:   summary,
		TotalSize: summary.HumanSize(),
	}, nil
}

// Build assembles the preset and writes the artifacts. When entries are
// unmatched, the report is written before the confirmer is asked.
func (s *Service) Build(ctx context.Context, doc *preset.Document, confirmer Confirmer) (*Outcome, error) {
	reporting := ConfirmFunc(func(ctx context.Context, unmatched []modlist.UnmatchedEntry) (bool, error) {
		if s.writer != nil {
			report, err := s.writer.WriteReport(unmatched)
			if err != nil {
				return false, err
			}
			s.logger.Info("Wrote unmatched report", zap.String("path", report.Path))
		}
		if confirmer == nil {
			return false, nil
		}
		return confirmer.Confirm(ctx, unmatched)
	})

	outcome, err := s.Assemble(ctx, doc, reporting)
	if err != nil {
		return nil, err
	}

	if s.writer != nil {
		artifacts, err := s.writer.WriteLists(outcome.Items)
		if err != nil {
			return nil, err
		}
		outcome.Artifacts = artifacts
	}

	if s.publisher != nil && len(outcome.Artifacts) > 0 {
		if err := s.publisher.Publish(ctx, doc.Family, outcome.Artifacts); err != nil {
			return nil, err
		}
	}

	return outcome, nil
}
