/*
Package domain contains the core models of the trajectory filter layer.

It defines the canonical trajectory representation shared by every filter and
adapter, the filter lifecycle state, the error taxonomy, and the observability
events. This package is kept pure and free of external dependencies like I/O or
persistence, following Hexagonal Architecture principles.

# Key Entities

  - JointTrajectoryPoint: One joint configuration with optional derivatives and its time offset.
  - Trajectory: An ordered, time-monotonic sequence of points sharing one joint-name ordering.
  - FilterState: The Unconfigured/Configured lifecycle flag every filter carries.
  - FilterEvent: A structural record of a Configure or Update call, delivered to LifecycleHooks.
*/
package domain
