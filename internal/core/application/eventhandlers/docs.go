// Package eventhandlers contains the subscribers wired into the event
// dispatcher. Each handler declares the event names it cares about through
// CanHandle and performs its side effect in Handle.
//
// Handlers run synchronously after the aggregate has been persisted and must
// tolerate being the only observer of an event: a failing handler is logged
// by the dispatcher and never affects the others or the originating command.
package eventhandlers
