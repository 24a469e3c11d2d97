package ec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/shopfront/sfp/internal/client"
)

type EC2Service struct {
	client *ec2.Client
}

func NewEC2Service(region string) (*EC2Service, error) {
	client, err := client.NewEC2Client(region)
	if err != nil {
		return nil, err
	}
	return &EC2Service{client: client}, nil
}

func (e *EC2Service) DescribeVpcs(ctx context.Context) (*ec2.DescribeVpcsOutput, error) {
	input := &ec2.DescribeVpcsInput{}
	return e.client.DescribeVpcs(ctx, input)
}

// DescribeAvailabilityZones returns the zones currently available in the
// client's region.
func (e *EC2Service) DescribeAvailabilityZones(ctx context.Context) (*ec2.DescribeAvailabilityZonesOutput, error) {
	input := &ec2.DescribeAvailabilityZonesInput{
		Filters: []ec2types.Filter{
			{
				Name:   aws.String("state"),
				Values: []string{"available"},
			},
		},
	}
	return e.client.DescribeAvailabilityZones(ctx, input)
}
