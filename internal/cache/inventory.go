package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix = "user:%d"
	PostKeyPrefix = "post:%d"
	PostsListKey  = "posts:list"
)

const (
	UserTTL = 5 * time.Minute
	PostTTL = 10 * time.Minute
	ListTTL = time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidatePost drops both the single-post entry and the list, since the
// list embeds likes and comments.
func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
	Invalidate(ctx, PostsListKey)
}
