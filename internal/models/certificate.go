package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Certificate struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CertificateID  string             `bson:"certificateId" json:"certificateId"`
	StudentName    string             `bson:"studentName" json:"studentName"`
	Course         string             `bson:"course" json:"course"`
	IssueDate      string             `bson:"issueDate" json:"issueDate"`
	ExpiryDate     string             `bson:"expiryDate" json:"expiryDate"`
	Grade          string             `bson:"grade" json:"grade"`
	Skills         []string           `bson:"skills" json:"skills"`
	MSMERegistered bool               `bson:"msmeRegistered" json:"msmeRegistered"`
}
