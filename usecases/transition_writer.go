package usecases

import (
	"context"

	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/agenciabaepi/AgilizaOS-sub004/models"
	"github.com/agenciabaepi/AgilizaOS-sub004/repositories"
	"github.com/agenciabaepi/AgilizaOS-sub004/utils"
)

var transitionWrites = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "agiliza_audit_transition_writes_total",
	Help: "Transition event writes by outcome path (validated, fallback, lost).",
}, []string{"path"})

// TransitionAppender is one way of durably appending a transition event.
type TransitionAppender interface {
	AppendTransition(
		ctx context.Context,
		exec repositories.Executor,
		attrs models.CreateTransitionEventAttributes,
		newEventId string,
	) error
}

type transitionEventWriterRepository interface {
	CreateTransitionEvent(ctx context.Context, exec repositories.Executor,
		attrs models.CreateTransitionEventAttributes, newEventId string) error
	RecordTransitionValidated(ctx context.Context, exec repositories.Executor,
		attrs models.CreateTransitionEventAttributes, newEventId string) error
}

// ValidatedTransitionWriter appends through the record_order_transition sql
// function, which re-validates tenant ownership in the database.
type ValidatedTransitionWriter struct {
	Repository transitionEventWriterRepository
}

func (w ValidatedTransitionWriter) AppendTransition(
	ctx context.Context,
	exec repositories.Executor,
	attrs models.CreateTransitionEventAttributes,
	newEventId string,
) error {
	return w.Repository.RecordTransitionValidated(ctx, exec, attrs, newEventId)
}

// DirectTransitionWriter appends with a plain insert, skipping the in-database
// validation. Used as the degraded fallback when the validated path fails.
type DirectTransitionWriter struct {
	Repository transitionEventWriterRepository
}

func (w DirectTransitionWriter) AppendTransition(
	ctx context.Context,
	exec repositories.Executor,
	attrs models.CreateTransitionEventAttributes,
	newEventId string,
) error {
	return w.Repository.CreateTransitionEvent(ctx, exec, attrs, newEventId)
}

// FailoverTransitionWriter tries the primary writer, retrying once on
// transient failures, then falls back to the secondary writer so a broken
// primary path does not lose the audit record. Constraint violations are
// final: the same payload would violate the same constraint on the fallback.
// A missing table or function is not retried in place either, since it never
// resolves without provisioning, but it does trigger the fallback.
type FailoverTransitionWriter struct {
	Primary  TransitionAppender
	Fallback TransitionAppender
}

func (w FailoverTransitionWriter) AppendTransition(
	ctx context.Context,
	exec repositories.Executor,
	attrs models.CreateTransitionEventAttributes,
	newEventId string,
) error {
	logger := utils.LoggerFromContext(ctx)

	primaryErr := retry.Do(
		func() error {
			return w.Primary.AppendTransition(ctx, exec, attrs, newEventId)
		},
		retry.Attempts(2),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.RetryIf(func(err error) bool {
			return !repositories.IsConstraintViolationError(err) &&
				!repositories.IsMissingRelationError(err)
		}),
	)
	if primaryErr == nil {
		transitionWrites.WithLabelValues("validated").Inc()
		return nil
	}
	if repositories.IsConstraintViolationError(primaryErr) {
		return primaryErr
	}

	logger.WarnContext(ctx, "validated transition write failed, falling back to direct insert",
		"order_id", attrs.OrderId, "error", primaryErr.Error())

	if fallbackErr := w.Fallback.AppendTransition(ctx, exec, attrs, newEventId); fallbackErr != nil {
		transitionWrites.WithLabelValues("lost").Inc()
		return errors.Wrapf(models.ErrAuditNotRecorded,
			"primary: %v, fallback: %v", primaryErr, fallbackErr)
	}

	transitionWrites.WithLabelValues("fallback").Inc()
	return nil
}
