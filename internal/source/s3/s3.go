// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0

package s3

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	awsx "github.com/locctl/locctl/internal/aws"
	"github.com/locctl/locctl/internal/cacheutil"
	"github.com/locctl/locctl/internal/config"
	"github.com/locctl/locctl/internal/log"
)

// Source reads a locator bundle from an S3 bucket: baseline.yaml at the
// prefix root, diffs under <prefix>/diffs/. Fetched objects go through the
// local cache so repeated resolutions don't refetch unchanged documents.
type Source struct {
	ctx    context.Context
	client *s3v2.Client
	bucket string
	prefix string
}

// New builds an S3 source. Region can be set via the s3.region config key;
// credentials come from the ambient AWS chain.
func New(ctx context.Context, bucket, prefix string, optFns ...func(*s3v2.Options)) (*Source, error) {
	var cfgOpts []awsx.Option
	if region, err := config.GetString("s3.region", ""); err == nil && region != "" {
		cfgOpts = append(cfgOpts, awsx.WithRegion(region))
	}

	cfg, err := awsx.LoadAWSConfig(ctx, cfgOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	if err := purgeCache(); err != nil {
		log.WithError(err).Warnf("failed to purge cache")
	}

	return &Source{
		ctx:    ctx,
		client: awsx.NewS3(cfg, optFns...),
		bucket: bucket,
		prefix: prefix,
	}, nil
}

// Baseline returns the baseline document at <prefix>/baseline.yaml.
func (s *Source) Baseline() ([]byte, error) {
	return s.object(path.Join(s.prefix, "baseline.yaml"))
}

// Diffs lists and fetches every YAML object under <prefix>/diffs/.
func (s *Source) Diffs() (map[string][]byte, error) {
	diffPrefix := path.Join(s.prefix, "diffs") + "/"

	docs := map[string][]byte{}
	var token *string
	for {
		out, err := s.client.ListObjectsV2(s.ctx, &s3v2.ListObjectsV2Input{
			Bucket:            awsv2.String(s.bucket),
			Prefix:            awsv2.String(diffPrefix),
			ContinuationToken: token,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list diffs: %w", err)
		}

		for _, obj := range out.Contents {
			key := awsv2.ToString(obj.Key)
			ext := path.Ext(key)
			if ext != ".yaml" && ext != ".yml" {
				continue
			}
			data, err := s.object(key)
			if err != nil {
				return nil, err
			}
			docs[path.Base(key)] = data
		}

		if !awsv2.ToBool(out.IsTruncated) {
			break
		}
		token = out.NextContinuationToken
	}

	log.Debugf("s3 diffs listed: bucket=%s, prefix=%s, count=%d", s.bucket, diffPrefix, len(docs))
	return docs, nil
}

func (s *Source) String() string {
	return "s3://" + path.Join(s.bucket, s.prefix)
}

// object fetches one object, going through the local cache first.
func (s *Source) object(key string) ([]byte, error) {
	clearKey := "s3://" + path.Join(s.bucket, key)

	if entry, ok := cacheutil.Read(cacheSubdirs(s.bucket), clearKey); ok {
		return entry.Data, nil
	}

	result, err := s.client.GetObject(s.ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(s.bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get S3 object %s: %w", clearKey, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read S3 object %s: %w", clearKey, err)
	}

	if err := cacheutil.Write(cacheSubdirs(s.bucket), clearKey, data); err != nil {
		log.WithError(err).Warnf("failed to cache %s", clearKey)
	}

	return data, nil
}

func cacheSubdirs(bucket string) []string {
	// Keep the bucket readable in the cache tree; strip path-hostile chars.
	return []string{"s3", strings.ReplaceAll(bucket, "/", "_")}
}

// purgeCache drops cached objects older than the cache.hours config value.
func purgeCache() error {
	hours, err := config.GetInt("cache.hours", 0)
	if err != nil {
		return err
	}
	return cacheutil.Purge(hours)
}
