/*
Package game
File: decisions.go
Description:
    The decision operations an operator applies during a year, before the
    transition: initiating a capital project, issuing a loan, and funding a
    marketing campaign.

    Every operation validates first and mutates last, so a rejected decision
    leaves the airport exactly as it was.
*/

package game

import "fmt"

// InitiateCapexProject starts a capital project.
// The equity-funded portion (cost - loanAmount) must be covered by the cash
// balance, except for the Cargo Hangar which is financed by a third party.
// Capacity and asset effects are applied only when the lead time runs out.
func (a *Airport) InitiateCapexProject(name string, cost, capacityEffect float64, leadTime int, loanAmount float64) error {
	if a.Complete() {
		return ErrSimulationComplete
	}
	if cost < 0 || capacityEffect < 0 || leadTime < 0 || loanAmount < 0 || loanAmount > cost {
		return fmt.Errorf("%w: project %q cost %.2f loan %.2f", ErrInvalidAmount, name, cost, loanAmount)
	}

	project := CapexProject{
		Name:              name,
		Kind:              projectKindFor(name),
		Cost:              cost,
		CapacityEffect:    capacityEffect,
		LeadTimeRemaining: leadTime,
	}

	// Third-party project: no cash check, no equity, no outflow.
	if project.Kind == ProjectCargoVolume {
		if loanAmount > 0 {
			return fmt.Errorf("%w: %q is third-party financed and takes no loan", ErrInvalidAmount, name)
		}
		a.CapexProjects = append(a.CapexProjects, project)
		return nil
	}

	equityPortion := cost - loanAmount
	if a.CashBalance < equityPortion {
		return fmt.Errorf("%w: project %q needs %.2f of equity funding, cash is %.2f",
			ErrInsufficientFunds, name, equityPortion, a.CashBalance)
	}
	if loanAmount > 0 {
		if err := a.checkGearing(loanAmount); err != nil {
			return fmt.Errorf("project %q: %w", name, err)
		}
	}

	a.CapexProjects = append(a.CapexProjects, project)
	if loanAmount > 0 {
		a.addLoan(loanAmount)
	}
	a.Equity -= equityPortion
	a.CapexCashOutflow += cost
	return nil
}

// InitiateCatalogProject starts a project from the catalog by name.
func (a *Airport) InitiateCatalogProject(name string, loanAmount float64) error {
	spec := GetProject(name)
	if spec == nil {
		return fmt.Errorf("%w: %q", ErrUnknownProject, name)
	}
	return a.InitiateCapexProject(spec.Name, spec.Cost, spec.CapacityEffect, spec.LeadTime, loanAmount)
}

// IssueLoan borrows amount over the fixed term at the fixed rate.
// The loan is refused if equity is not positive or gearing would pass MaxGearing.
func (a *Airport) IssueLoan(amount float64) error {
	if a.Complete() {
		return ErrSimulationComplete
	}
	if amount <= 0 {
		return fmt.Errorf("%w: loan amount %.2f", ErrInvalidAmount, amount)
	}
	if err := a.checkGearing(amount); err != nil {
		return err
	}
	a.addLoan(amount)
	return nil
}

// checkGearing tests whether amount of new debt keeps gearing within the limit.
func (a *Airport) checkGearing(amount float64) error {
	if a.Equity <= 0 {
		return fmt.Errorf("%w: equity is %.2f", ErrGearingExceeded, a.Equity)
	}
	if g := (a.Debt + amount) / a.Equity; g > MaxGearing {
		return fmt.Errorf("%w: gearing would be %.2f (max %.2f)", ErrGearingExceeded, g, MaxGearing)
	}
	return nil
}

// addLoan books an approved loan. Caller must have checked gearing.
func (a *Airport) addLoan(amount float64) {
	a.Debt += amount
	a.NewLoansThisYear += amount
	a.Loans = append(a.Loans, Loan{
		OriginalAmount:    amount,
		OutstandingAmount: amount,
		YearsRemaining:    LoanTermYears,
		InterestRate:      LoanInterestRate,
	})
}

// ApplyMarketingCampaign funds the campaign with the given code from this year's budget.
// Aero campaigns add a one-year traffic impulse; non-aero campaigns permanently
// raise spend per passenger.
func (a *Airport) ApplyMarketingCampaign(code string) error {
	if a.Complete() {
		return ErrSimulationComplete
	}
	c := GetCampaign(code)
	if c == nil {
		return fmt.Errorf("%w: %q", ErrUnknownCampaign, code)
	}
	if c.Cost > a.MarketingBudgetRemaining {
		return fmt.Errorf("%w: campaign %q costs %.2f, remaining %.2f",
			ErrInsufficientBudget, c.Code, c.Cost, a.MarketingBudgetRemaining)
	}

	a.MarketingBudgetRemaining -= c.Cost
	impact := c.BaseImpact * c.Multiplier(a.Strategy)
	switch c.Category {
	case CampaignAero:
		a.MarketingImpact += impact
	case CampaignNonAero:
		a.NonAeroSpendPerPax *= 1 + impact
	}
	return nil
}
