package delivery

import (
	"fmt"
	"notification-lab/contract"
	"notification-lab/domain"
	"strconv"

	"github.com/samber/lo"
)

const Separator = "-------------------------------"

// Report is a snapshot of the system statistics.
type Report struct {
	Users      int
	LossChance float64
	ReadChance float64
	Messages   []MessageReport
}

type MessageReport struct {
	Code int
	Body string
	domain.Statistics
}

// StatisticsReport gathers the counters, chances and per-message ledger
// sizes, messages ordered by code.
func (s *System) StatisticsReport() Report {
	s.mu.Lock()
	users := s.userCount
	s.mu.Unlock()
	return Report{
		Users:      users,
		LossChance: s.lossChance,
		ReadChance: s.readChance,
		Messages: lo.Map(s.Messages(), func(m *domain.Message, _ int) MessageReport {
			return MessageReport{Code: m.Code(), Body: m.Body(), Statistics: m.Statistics()}
		}),
	}
}

// ShowStatistics writes the report to the sink line by line.
func (s *System) ShowStatistics(sink contract.LineSink) {
	for _, line := range s.StatisticsReport().Lines() {
		sink.Display(line)
	}
}

// Header returns the summary part of the report.
func (r Report) Header() []string {
	return []string{
		Separator,
		"DELIVERY SYSTEM STATISTICS",
		Separator,
		fmt.Sprintf("USERS: %d unique users registered.", r.Users),
		Separator,
		fmt.Sprintf("LOSS CHANCE: chance that a message will be lost is set to %s", formatChance(r.LossChance)),
		Separator,
		fmt.Sprintf("READ CHANCE: chance that a message will be read is set to %s", formatChance(r.ReadChance)),
		Separator,
		fmt.Sprintf("MESSAGES: %d unique messages created.", len(r.Messages)),
		Separator,
	}
}

// Lines renders the full report as plain text lines.
func (r Report) Lines() []string {
	lines := r.Header()
	for _, m := range r.Messages {
		lines = append(lines,
			fmt.Sprintf("Message %d: %s", m.Code, m.Body),
			fmt.Sprintf("Sent to %d users.", m.Sent),
			fmt.Sprintf("Received by %d users.", m.Received),
			fmt.Sprintf("Read by %d users.", m.Read),
			Separator,
		)
	}
	return lines
}

func formatChance(chance float64) string {
	return strconv.FormatFloat(chance, 'f', -1, 64)
}
