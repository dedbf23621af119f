/*
Package ports defines the driven ports (interfaces) of the trajectory filter layer.

These interfaces decouple the filter lifecycle from concrete filters, parameter
backends and the planning pipeline that hosts them.

# Key Interfaces

  - Filter: The configure/update lifecycle every trajectory filter implements.
  - ParamStore: Read-only, synchronous parameter lookup used only inside Configure.
  - PlanningAdapter: The planning pipeline's extension point (AdaptAndPlan).
*/
package ports
