// Package service provides the application-level use cases of the medication
// tracker: creating treatment schedules with their derived dose reminders,
// transitioning dose lifecycles, managing medicines, and computing aggregate
// statistics. Services orchestrate domain entities and store contracts and
// enforce the invariants that span both.
package service
