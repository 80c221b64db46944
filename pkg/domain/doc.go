/*
Package domain contains the core model of the rapport state machine.

A Person carries a relationship State with an implicit counterpart. Each
Action the person performs is delegated to the transition table, which
decides the line to emit and the next State. The package is pure: it has no
knowledge of persistence, transport or presentation.

# Key Entities

  - State: FirstMeeting (no prior interaction) or Acquainted (at least one).
  - Action: Greet or Farewell.
  - Reaction: the (message template, next state) pair for a State x Action cell.
  - Person: the entity that owns exactly one current State.
  - Snapshot: the persistable view of a Person.
*/
package domain
