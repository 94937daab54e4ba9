package agent

import (
	"context"
	"fmt"
	"time"

	"bookscan/internal/agent/deps"
	"bookscan/internal/agent/prompt"
	"bookscan/internal/agent/response"
	"bookscan/internal/model"
	"bookscan/internal/observability"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	// ReviewTemperature balances variety and coherence for the long-form review
	ReviewTemperature float32 = 0.7
	// ReviewMaxTokens bounds the review length
	ReviewMaxTokens int32 = 1500
	// CategoryTemperature keeps the one-word classification stable
	CategoryTemperature float32 = 0.3
	// CategoryMaxTokens is enough for a single word
	CategoryMaxTokens int32 = 10
)

// Reviewer produces reviews and categories for book titles.
// It holds no per-request state and is safe for concurrent use.
type Reviewer struct {
	reviewClient   deps.LLMClient
	categoryClient deps.LLMClient
	prompts        *prompt.Builder
	timeout        time.Duration
}

// NewReviewer wires the two completion clients. A zero timeout leaves deadlines to the caller's context.
func NewReviewer(reviewClient, categoryClient deps.LLMClient, timeout time.Duration) *Reviewer {
	return &Reviewer{
		reviewClient:   reviewClient,
		categoryClient: categoryClient,
		prompts:        prompt.NewBuilder(),
		timeout:        timeout,
	}
}

func (r *Reviewer) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

// GenerateReview asks the review model for a seven-section review.
// It never returns an error: failures come back as a failed Outcome.
func (r *Reviewer) GenerateReview(ctx context.Context, title string) (out Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Errorf("[REVIEW] recovered panic: %v", rec)
			out = Failed(fmt.Errorf("panic: %v", rec))
		}
	}()

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	text, err := r.reviewClient.GenerateContent(ctx, r.prompts.BuildReviewPrompt(title), ReviewTemperature, ReviewMaxTokens)
	if err == nil && !response.HasText(text) {
		err = ErrEmptyResponse
	}
	if err != nil {
		log.WithFields(log.Fields{
			"title": title,
			"code":  FailureCode(err).String(),
		}).Warnf("[REVIEW] Generation failed: %v", err)
		return Failed(err)
	}

	log.WithField("title", title).Debugf("[REVIEW] Generated %d chars in %v", len(text), time.Since(start))
	return Succeeded(text)
}

// CategorizeBook classifies a title as Fiction, Non-Fiction or Unknown.
// Any failure degrades to Unknown.
func (r *Reviewer) CategorizeBook(ctx context.Context, title string) (category model.Category) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Errorf("[CATEGORY] recovered panic: %v", rec)
			category = model.CategoryUnknown
		}
	}()

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	raw, err := r.categoryClient.GenerateContent(ctx, r.prompts.BuildCategoryPrompt(title), CategoryTemperature, CategoryMaxTokens)
	if err != nil {
		log.WithFields(log.Fields{
			"title": title,
			"code":  FailureCode(err).String(),
		}).Warnf("[CATEGORY] Categorization failed, using Unknown: %v", err)
		return model.CategoryUnknown
	}

	category = response.ParseCategory(raw)
	if category == model.CategoryUnknown {
		log.WithField("title", title).Debugf("[CATEGORY] Model answered %q", raw)
	}
	return category
}

// Review runs categorization and generation concurrently and assembles the result.
func (r *Reviewer) Review(ctx context.Context, title string) model.ReviewResult {
	var (
		category model.Category
		outcome  Outcome
		g        errgroup.Group
	)

	g.Go(func() error {
		category = r.CategorizeBook(ctx, title)
		return nil
	})
	g.Go(func() error {
		outcome = r.GenerateReview(ctx, title)
		return nil
	})
	_ = g.Wait()

	observability.Categories.WithLabelValues(string(category)).Inc()

	return model.ReviewResult{
		BookTitle:   title,
		Category:    category,
		ReviewText:  outcome.Text(),
		Succeeded:   outcome.OK(),
		FailureCode: outcome.FailureCode(),
	}
}
