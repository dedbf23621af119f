/*
Package planning describes the request/response shapes of the motion-planning
pipeline that hosts the filters, and the Planner port the pipeline exposes.

The filter layer treats the pipeline as an external collaborator: it only needs
a Request carrying a trajectory, a Response carrying the planned trajectory, and
a Planner that turns one into the other.
*/
package planning
