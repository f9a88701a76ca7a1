package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UsersRegistered counts successful account registrations.
	UsersRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "watchreview_users_registered_total",
		Help: "Total number of successfully registered users",
	})

	// LoginAttempts counts login attempts by result.
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "watchreview_login_attempts_total",
		Help: "Total number of login attempts by result",
	}, []string{"result"})

	// ReviewsCreated counts successfully created reviews.
	ReviewsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "watchreview_reviews_created_total",
		Help: "Total number of reviews created",
	})

	// CommentsCreated counts successfully created comments.
	CommentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "watchreview_comments_created_total",
		Help: "Total number of comments created",
	})
)
