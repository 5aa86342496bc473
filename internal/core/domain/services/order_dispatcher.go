package services

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
)

// ErrNoEligiblePartner is returned when none of the provided partners can
// take the order: either the set is empty or every partner fails the
// eligibility predicate.
var ErrNoEligiblePartner = errors.New("no eligible partner")

// OrderDispatcher is the domain service that matches a pending order with a
// delivery partner.
//
// Matching happens in two steps:
//  1. Eligibility: the partner must be active, below the capacity ceiling,
//     cover the order's area (normalized comparison), and be on shift at the
//     supplied time of day.
//  2. Selection: among eligible partners, the one with the lowest current
//     load wins. Ties break by input order — the first encountered partner is
//     chosen, so selection is deterministic for a fixed candidate order.
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// IsEligible is the pure eligibility predicate: it reports whether p may take
// o at the given time of day, with no side effects.
func (d OrderDispatcher) IsEligible(p *partner.Partner, o *order.Order, now kernel.TimeOfDay) bool {
	return p.IsActive() &&
		p.HasCapacity() &&
		p.CoversArea(o.Area()) &&
		p.OnShift(now)
}

// EligiblePartners filters partners through IsEligible, preserving input
// order.
func (d OrderDispatcher) EligiblePartners(
	o *order.Order,
	partners []*partner.Partner,
	now kernel.TimeOfDay,
) []*partner.Partner {
	eligible := make([]*partner.Partner, 0, len(partners))
	for _, p := range partners {
		if d.IsEligible(p, o, now) {
			eligible = append(eligible, p)
		}
	}
	return eligible
}

// SelectPartner picks the least-loaded partner from the candidates, first
// encountered winning ties. Returns nil for an empty set.
func (d OrderDispatcher) SelectPartner(candidates []*partner.Partner) *partner.Partner {
	var selected *partner.Partner
	for _, p := range candidates {
		if selected == nil || p.CurrentLoad() < selected.CurrentLoad() {
			selected = p
		}
	}
	return selected
}

// Dispatch finds an eligible partner for the order and executes the
// assignment on both aggregates: the selected partner's load is incremented
// and the order moves to Assigned. The caller persists both as one unit.
//
// Returns ErrNoEligiblePartner when no partner qualifies; the order is left
// untouched in that case.
func (d OrderDispatcher) Dispatch(
	o *order.Order,
	partners []*partner.Partner,
	now kernel.TimeOfDay,
) (*partner.Partner, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := o.ValidateAssign(); err != nil {
		return nil, err
	}

	for _, p := range partners {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}

	selected := d.SelectPartner(d.EligiblePartners(o, partners, now))
	if selected == nil {
		return nil, ErrNoEligiblePartner
	}

	if err := selected.TakeOrder(); err != nil {
		return nil, err
	}

	if err := o.Assign(selected.ID()); err != nil {
		return nil, err
	}

	return selected, nil
}
