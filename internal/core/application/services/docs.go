// Package services holds the application services of the waiter core.
//
// OrderService owns the order lifecycle: it creates orders in the Init state, reads them
// back, and advances their state strictly forward. Every created order increments a
// Prometheus counter that has to be bound once at startup:
//
//	svc := services.NewOrderService(uowFactory, logger, services.WithEventPublisher(producer))
//	if err := svc.BindTo(prometheus.DefaultRegisterer); err != nil {
//	    return err
//	}
//
// Calling CreateOrder on a service that was never bound is a programming error and panics.
package services
