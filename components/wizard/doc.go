// Package wizard serves the four-step 10DLC intake flow as server-rendered
// pages: use-case selection, scope confirmation, business details, and the
// registration review. Pages are rendered from embedded templates; state
// travels in the query string and, best effort, in a session store.
//
// The component is mounted with RegisterRoutes under a base path (default
// /start) and also exposes small JSON endpoints for state and use-case
// option lists.
package wizard
