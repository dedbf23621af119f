/*
Package observability provides tools for monitoring the trajectory filter layer.

Metrics turns filter lifecycle events into Prometheus series; its Hooks can be
passed to a chain or shim with WithLifecycleHooks and merged with any other
domain.LifecycleHooks.
*/
package observability
