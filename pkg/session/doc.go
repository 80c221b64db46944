/*
Package session orchestrates many independent people over a shared PersonStore.

Each call loads one person's snapshot, drives the state machine, and saves the
result while holding that person's lock. Locks are local (reference counted
mutexes) and optionally distributed across replicas via ports.DistributedLocker.
*/
package session
