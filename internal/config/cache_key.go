package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// ApprovedCollegesKey returns the cache key for the approved colleges list.
func (r *CacheKeyStruct) ApprovedCollegesKey() string {
	return "reference:colleges:approved"
}

// ApprovedStudentGroupsKey returns the cache key for the approved student groups list.
func (r *CacheKeyStruct) ApprovedStudentGroupsKey() string {
	return "reference:student_groups:approved"
}

// EmailsSentKey returns the cache key for a drive's sent-email counter.
func (r *CacheKeyStruct) EmailsSentKey(driveID int) string {
	return fmt.Sprintf("drive:%d:emails_sent", driveID)
}

// EmailsFailedKey returns the cache key for a drive's failed-email counter.
func (r *CacheKeyStruct) EmailsFailedKey(driveID int) string {
	return fmt.Sprintf("drive:%d:emails_failed", driveID)
}

// EmailsTotalKey returns the cache key for a drive's queued-email total.
func (r *CacheKeyStruct) EmailsTotalKey(driveID int) string {
	return fmt.Sprintf("drive:%d:emails_total", driveID)
}

// EmailProgressChannel returns the Redis PubSub channel for a drive's email send progress.
func (r *CacheKeyStruct) EmailProgressChannel(driveID int) string {
	return fmt.Sprintf("drive:%d:email_progress", driveID)
}

var CacheKey = NewCacheKeyStruct()
