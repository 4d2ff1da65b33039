// Package lazyload provides the core abstractions and types for deferred
// media loading: configuration and its documented defaults, the lifecycle
// callback and event contracts, sentinel load errors, and the
// dependency-free observability interfaces.
//
// The state machine itself lives in lazyload/controller. Typical usage:
//
//	ctrl, err := controller.New(env,
//		controller.WithDocument(doc),
//		controller.WithCallbacks(lazyload.Callbacks{
//			OnLoad: func(el dom.Element) { ... },
//		}),
//	)
//	if err != nil {
//		// handle error
//	}
//	defer ctrl.Destroy()
//
//	ctrl.AddElements(newlyInsertedElement)
package lazyload
