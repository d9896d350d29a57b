// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package notify queues transient notifications (toasts) for display.

	sink := notify.QueueSink{Queue: backend.Queue(clientID)}
	notify.Show(ctx, sink, "Poll created")
	notify.Show(ctx, sink, "Could not save", notify.WithSeverity(notify.Error), notify.WithDuration(5*time.Second))

Severity is one of success, warning, error, default or info and defaults
to success. Duration defaults to 3000ms. Show is fire-and-forget: sink
failures are logged and not returned.

QueueSink keeps the queue in the client's storage so it survives redirects.
Each notification is pushed atomically, so concurrent requests from the
same client never drop one. The page renderer drains it on the next page
load.
*/
package notify
