// Package surveillance exposes the geographic hazard registry and
// synthesizes resource-deployment briefings for monitored cities.
package surveillance

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mohammedahmeduddin04/DocAI/internal/catalog"
	"github.com/mohammedahmeduddin04/DocAI/internal/domain"
)

// Service generates deployment briefings from the city registry.
type Service struct {
	logger *logrus.Logger

	// reportDelay simulates briefing synthesis latency for demo
	// parity. Zero in tests.
	reportDelay time.Duration
}

// NewService creates a surveillance service.
func NewService(logger *logrus.Logger, reportDelay time.Duration) *Service {
	return &Service{logger: logger, reportDelay: reportDelay}
}

// Cities returns the monitored city registry.
func (s *Service) Cities() []domain.CityData {
	return catalog.Cities
}

// GenerateReport synthesizes a deployment briefing for the named city.
// An unknown city is an error.
func (s *Service) GenerateReport(ctx context.Context, cityName string) (domain.DeploymentReport, error) {
	city, ok := catalog.FindCity(cityName)
	if !ok {
		return domain.DeploymentReport{}, fmt.Errorf("unknown surveillance city: %s", cityName)
	}

	if s.reportDelay > 0 {
		timer := time.NewTimer(s.reportDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return domain.DeploymentReport{}, ctx.Err()
		}
	}

	report := buildReport(city)

	s.logger.WithFields(logrus.Fields{
		"city":        city.Name,
		"risk":        city.Risk,
		"probability": report.SuccessProbability,
	}).Info("Deployment briefing generated")

	return report, nil
}

// buildReport derives the briefing from the city's risk profile. The
// success probability floors at 45 and falls with healthcare load,
// with an extra penalty for critical-risk cities.
func buildReport(city domain.CityData) domain.DeploymentReport {
	isCritical := city.Risk == domain.RiskCritical
	isHigh := city.Risk == domain.RiskHigh

	baseBudget := 45
	if isCritical {
		baseBudget = 250
	} else if isHigh {
		baseBudget = 120
	}

	penalty := 5.0
	if isCritical {
		penalty = 15
	}
	successProb := math.Max(45, 100-float64(city.HealthcareLoad)*0.4-penalty)

	doctorUnits := "15 Units"
	paramedicUnits := "40 Units"
	primaryExpense := "Mobile Testing Kits & Public Vaccination Drive"
	if isCritical {
		doctorUnits = "45 Units"
		paramedicUnits = "120 Units"
		primaryExpense = "Advanced Bio-Safe Modular Hospitals & Oxygen Logistics"
	}

	return domain.DeploymentReport{
		City: city.Name,
		Risk: city.Risk,
		SituationSummary: fmt.Sprintf(
			"A strategic emergency has been declared in %s due to a %s risk %s. Population density in high-risk zones reaches %s. Healthcare infrastructure is currently at %d%% capacity.",
			city.Name, strings.ToLower(string(city.Risk)), city.HazardType, city.PopAtRisk, city.HealthcareLoad,
		),
		Manpower: []domain.ManpowerAllocation{
			{Type: "Critical Care Doctors", Count: doctorUnits},
			{Type: "Emergency Paramedics", Count: paramedicUnits},
			{Type: "Bio-Containment Logistics", Count: "200 personnel"},
			{Type: "Field Security & Cordoning", Count: "15 Units"},
		},
		FinancialBudget: fmt.Sprintf("₹ %d Crores", baseBudget),
		PrimaryExpense:  primaryExpense,
		TacticalSteps: []string{
			"Establish Level 4 bio-containment perimeter around zero-point.",
			"Synchronize local private hospitals with the DocAI National Grid.",
			"Deploy mobile pharmaceutical dispensaries to high-density clusters.",
			"Initiate real-time symptom tracking for 100% of the at-risk population.",
		},
		SuccessProbability: int(math.Floor(successProb)),
		GeneratedAt:        time.Now().UTC(),
	}
}
