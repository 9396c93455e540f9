package store

import (
	"context"
	"fmt"

	"github.com/dkasab/unveil/ent"
	"github.com/dkasab/unveil/ent/llmrequestevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendArtifact(ctx context.Context, data ArtifactEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ArtifactEvent.Create().
		SetSequence(seqNum).
		SetConversationID(data.ConversationID).
		SetArtifactID(data.ArtifactID).
		SetSlotKey(data.SlotKey).
		SetTitle(data.Title).
		SetLanguage(data.Language).
		SetVersion(data.Version).
		SetLineCount(data.LineCount).
		SetTruncated(data.Truncated).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save artifact event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendQuizAnswer(ctx context.Context, data QuizAnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizAnswerEvent.Create().
		SetSequence(seqNum).
		SetConversationID(data.ConversationID).
		SetArtifactID(data.ArtifactID).
		SetQuizID(data.QuizID).
		SetQuestion(data.Question).
		SetUserAnswer(data.UserAnswer).
		SetCorrect(data.Correct).
		SetGateLevel(data.GateLevel).
		SetTurn(data.Turn).
		SetFallback(data.Fallback).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.After > 0 {
		q = q.Where(llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(llmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(llmrequestevent.TimestampLTE(opts.To))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	events := make([]LLMEvent, len(rows))
	for i, e := range rows {
		events[i] = llmEventFromEnt(e)
	}
	return events, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	e, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get LLM event: %w", err)
	}
	ev := llmEventFromEnt(e)
	return &ev, nil
}

// LLMUsageByPurpose aggregates in process; a local tool's event log stays
// small enough that a SQL GROUP BY buys nothing.
func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error) {
	rows, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	byPurpose := make(map[string]*LLMUsageStats)
	latencySum := make(map[string]int64)
	var order []string
	for _, e := range rows {
		st, ok := byPurpose[e.Purpose]
		if !ok {
			st = &LLMUsageStats{Purpose: e.Purpose}
			byPurpose[e.Purpose] = st
			order = append(order, e.Purpose)
		}
		st.Calls++
		st.InputTokens += e.InputTokens
		st.OutputTokens += e.OutputTokens
		latencySum[e.Purpose] += e.LatencyMs
	}

	out := make([]LLMUsageStats, 0, len(order))
	for _, p := range order {
		st := *byPurpose[p]
		if st.Calls > 0 {
			st.AvgLatencyMs = latencySum[p] / int64(st.Calls)
		}
		out = append(out, st)
	}
	return out, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	rows, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	byModel := make(map[string]*LLMModelUsage)
	var order []string
	for _, e := range rows {
		mu, ok := byModel[e.Model]
		if !ok {
			mu = &LLMModelUsage{Model: e.Model}
			byModel[e.Model] = mu
			order = append(order, e.Model)
		}
		mu.Calls++
		mu.InputTokens += e.InputTokens
		mu.OutputTokens += e.OutputTokens
	}

	out := make([]LLMModelUsage, 0, len(order))
	for _, m := range order {
		out = append(out, *byModel[m])
	}
	return out, nil
}

func llmEventFromEnt(e *ent.LLMRequestEvent) LLMEvent {
	return LLMEvent{
		ID:           e.ID,
		Timestamp:    e.Timestamp,
		Provider:     e.Provider,
		Model:        e.Model,
		Purpose:      e.Purpose,
		InputTokens:  e.InputTokens,
		OutputTokens: e.OutputTokens,
		LatencyMs:    e.LatencyMs,
		Success:      e.Success,
		ErrorMessage: e.ErrorMessage,
		RequestBody:  e.RequestBody,
		ResponseBody: e.ResponseBody,
	}
}
