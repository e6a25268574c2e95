package util

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

func UploadPhotoToGCS(base64Data, bucketName, objectName string) (string, int64, error) {
	ctx := context.Background()
	client, err := storage.NewClient(ctx)
	if err != nil {
		return "", 0, err
	}
	defer client.Close()

	// strip "data:image/jpeg;base64," prefix
	if strings.Contains(base64Data, ",") {
		parts := strings.Split(base64Data, ",")
		base64Data = parts[1]
	}

	data, err := base64.StdEncoding.DecodeString(base64Data)
	if err != nil {
		return "", 0, err
	}

	w := client.Bucket(bucketName).Object(objectName).NewWriter(ctx)
	w.ContentType = "image/jpeg"

	sizeBytes, err := w.Write(data)
	if err != nil {
		return "", 0, err
	}

	if err := w.Close(); err != nil {
		return "", 0, err
	}

	return PublicGCSURL(bucketName, objectName), int64(sizeBytes), nil
}

// DeleteGCSPrefix removes every object under prefix/ and returns how many
// objects were deleted. Used when a listing's photos are replaced or the
// listing is removed.
func DeleteGCSPrefix(bucketName, prefix string) (int, error) {
	ctx := context.Background()
	client, err := storage.NewClient(ctx)
	if err != nil {
		return 0, err
	}
	defer client.Close()

	bkt := client.Bucket(bucketName)
	prefix = strings.TrimSuffix(prefix, "/")

	deleted := 0
	it := bkt.Objects(ctx, &storage.Query{Prefix: prefix + "/"})
	for {
		obj, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return deleted, err
		}
		if err := bkt.Object(obj.Name).Delete(ctx); err != nil {
			return deleted, err
		}
		deleted++
	}

	return deleted, nil
}

func SanitizePart(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.ReplaceAll(s, " ", "_")
	re := regexp.MustCompile(`[^a-z0-9_\-]`)
	s = re.ReplaceAllString(s, "")
	if s == "" {
		return "unknown"
	}
	return s
}

func ListingPhotoPrefix(businessID uint, businessName string) string {
	return fmt.Sprintf("listings/%d_%s", businessID, SanitizePart(businessName))
}

// Builds a simple GCS URL. If your objects are private and you use signed URLs,
// you should regenerate signed URLs instead of using this.
func PublicGCSURL(bucket, objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectPath)
}
