/*
Package ports defines the driven ports (interfaces) for the rapport engine.

These interfaces decouple the state machine from persistence and coordination,
so the same Person can be kept in memory, in Redis, or anywhere else.

# Key Interfaces

  - PersonStore: Responsible for persisting and loading Person snapshots.
  - DistributedLocker: Provides distributed locking for concurrent access to one person.
*/
package ports
